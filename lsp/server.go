package lsp

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple" // required backend for glsp
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const serverName = "semcore-lsp"

// Config holds server construction options.
type Config struct {
	// ParseFunc converts document text into a parse result. Required.
	ParseFunc ParseFunc
}

// Server is the semantic-analysis language server.
type Server struct {
	logger    *slog.Logger
	handler   protocol.Handler
	server    *server.Server
	workspace *Workspace

	shutdownCalled bool

	closeOnce sync.Once
	closeErr  error
}

// NewServer constructs a server around a fresh [Workspace]. A nil logger
// defaults to slog.Default().
func NewServer(logger *slog.Logger, cfg Config) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ParseFunc == nil {
		panic("lsp: NewServer requires a non-nil ParseFunc")
	}

	s := &Server{
		logger:    logger.With(slog.String("component", "lsp.server")),
		workspace: NewWorkspace(logger, cfg.ParseFunc),
	}

	commonlog.Configure(0, nil) // glsp logs via commonlog internally; we use slog exclusively

	s.handler = protocol.Handler{
		Initialize:    s.initialize,
		Initialized:   s.initialized,
		Shutdown:      s.shutdown,
		Exit:          s.exit,
		SetTrace:      s.setTrace,
		CancelRequest: s.cancelRequest,

		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,

		TextDocumentHover:         s.textDocumentHover,
		TextDocumentDefinition:    s.textDocumentDefinition,
		TextDocumentReferences:    s.textDocumentReferences,
		TextDocumentRename:        s.textDocumentRename,
		TextDocumentFoldingRange:  s.textDocumentFoldingRange,
		TextDocumentSelectionRange: s.textDocumentSelectionRange,
		TextDocumentInlayHint:     s.textDocumentInlayHint,

		TextDocumentSemanticTokensFull: s.textDocumentSemanticTokensFull,

		WorkspaceDidChangeWatchedFiles: s.workspaceDidChangeWatchedFiles,
	}

	s.server = server.NewServer(&s.handler, serverName, false)
	return s
}

// Handler exposes the protocol handler for integration tests.
func (s *Server) Handler() *protocol.Handler { return &s.handler }

// Workspace exposes the underlying LSP workspace for integration tests.
func (s *Server) Workspace() *Workspace { return s.workspace }

// RunStdio serves the protocol over stdio until the connection closes.
func (s *Server) RunStdio() error {
	if err := s.server.RunStdio(); err != nil {
		return fmt.Errorf("lsp: run stdio: %w", err)
	}
	return nil
}

// Close closes the underlying connection, causing RunStdio to return.
// Close is idempotent and safe to call before RunStdio has started.
func (s *Server) Close() error {
	conn := s.server.GetStdio()
	if conn == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		if err := conn.Close(); err != nil {
			s.closeErr = fmt.Errorf("lsp: close connection: %w", err)
		}
	})
	return s.closeErr
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	s.logger.Info("initialize request received",
		slog.String("client_name", clientName(params)),
		slog.String("root_uri", rootURI(params)),
	)
	logClientCapabilities(s.logger, params.Capabilities)

	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	if syncOpts, ok := capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions); ok {
		syncOpts.Change = &syncKind
	}
	capabilities.SemanticTokensProvider = &protocol.SemanticTokensOptions{
		Legend: semanticTokensLegend(),
		Full:   true,
	}

	version := "dev"
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.logger.Info("server initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.logger.Info("shutdown request received")
	s.shutdownCalled = true
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) exit(_ *glsp.Context) error {
	exitCode := 0
	if !s.shutdownCalled {
		s.logger.Warn("exit called without shutdown")
		exitCode = 1
	}
	s.logger.Info("exit notification received", slog.Int("exit_code", exitCode))
	os.Exit(exitCode)
	return nil // unreachable
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) cancelRequest(ctx *glsp.Context, params *protocol.CancelParams) error {
	s.logger.Debug("cancelRequest", slog.Any("id", params.ID))
	return nil
}

func (s *Server) notifierFrom(ctx *glsp.Context) Notifier {
	if ctx == nil {
		return nil
	}
	return func(method string, params any) { ctx.Notify(method, params) }
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !isSupportedURI(uri) {
		s.logger.Debug("ignoring didOpen for unsupported file type", slog.String("uri", uri))
		return nil
	}
	s.logger.Debug("textDocument/didOpen", slog.String("uri", uri), slog.Int("version", int(params.TextDocument.Version)))
	s.workspace.Open(s.notifierFrom(ctx), uri, int(params.TextDocument.Version), params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if !isSupportedURI(uri) {
		return nil
	}
	s.logger.Debug("textDocument/didChange", slog.String("uri", uri), slog.Int("version", int(params.TextDocument.Version)))

	for _, raw := range params.ContentChanges {
		if change, ok := raw.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.workspace.Change(s.notifierFrom(ctx), uri, int(params.TextDocument.Version), normalizeLineEndings(change.Text))
			return nil
		}
	}
	s.logger.Warn("received non-whole change but server advertises full sync", slog.String("uri", uri))
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.logger.Debug("textDocument/didClose", slog.String("uri", uri))
	s.workspace.Close(uri)
	return nil
}

func (s *Server) workspaceDidChangeWatchedFiles(ctx *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	for _, change := range params.Changes {
		s.logger.Debug("watched file changed", slog.String("uri", change.URI), slog.Int("type", int(change.Type)))
	}
	return nil
}

// normalizeLineEndings converts CRLF/CR line endings to LF so byte-offset
// math in posconv.go is never thrown off by a Windows client.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

func clientName(params *protocol.InitializeParams) string {
	if params.ClientInfo != nil {
		if params.ClientInfo.Version != nil {
			return params.ClientInfo.Name + " " + *params.ClientInfo.Version
		}
		return params.ClientInfo.Name
	}
	return "unknown"
}

func rootURI(params *protocol.InitializeParams) string {
	if params.RootURI != nil {
		return *params.RootURI
	}
	return ""
}

func logClientCapabilities(logger *slog.Logger, caps protocol.ClientCapabilities) {
	var features []string
	if caps.TextDocument != nil {
		if caps.TextDocument.Hover != nil {
			features = append(features, "hover")
			if caps.TextDocument.Hover.ContentFormat != nil &&
				slices.Contains(caps.TextDocument.Hover.ContentFormat, protocol.MarkupKindMarkdown) {
				features = append(features, "hover-markdown")
			}
		}
		if caps.TextDocument.Definition != nil {
			features = append(features, "definition")
		}
		if caps.TextDocument.References != nil {
			features = append(features, "references")
		}
		if caps.TextDocument.Rename != nil {
			features = append(features, "rename")
		}
		if caps.TextDocument.FoldingRange != nil {
			features = append(features, "folding-range")
		}
		if caps.TextDocument.SelectionRange != nil {
			features = append(features, "selection-range")
		}
		if caps.TextDocument.SemanticTokens != nil {
			features = append(features, "semantic-tokens")
		}
	}
	logger.Info("client capabilities", slog.Any("features", features))
}
