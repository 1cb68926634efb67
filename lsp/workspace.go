package lsp

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/workspace"
)

// document tracks one open text document: its URI-derived identity, the
// client's version counter, and the text last reported by didOpen/
// didChange.
type document struct {
	uri     string
	version int
	text    string
}

// Workspace is the LSP-facing wrapper around a [workspace.Workspace]: it
// adds open-document tracking, a [location.Registry] for position
// conversion, and diagnostic publishing, per SPEC_FULL.md §7's "thin
// wrapper around workspace.Workspace plus open-document tracking",
// grounded on the teacher's lsp/workspace.go.
type Workspace struct {
	mu sync.Mutex

	logger *slog.Logger
	parse  ParseFunc
	core   *workspace.Workspace
	source *location.Registry
	enc    PositionEncoding

	// open maps a SourceID to the document the client currently has
	// open under that identity.
	open map[location.SourceID]*document
}

// NewWorkspace creates an LSP workspace over a fresh semantic core,
// parsing document text with parse. A nil logger defaults to
// slog.Default().
func NewWorkspace(logger *slog.Logger, parse ParseFunc) *Workspace {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{
		logger: logger.With(slog.String("component", "lsp.workspace")),
		parse:  parse,
		core:   workspace.New(),
		source: location.NewRegistry(),
		enc:    PositionEncodingUTF16,
		open:   make(map[location.SourceID]*document),
	}
}

// Core returns the underlying semantic-core workspace, for query-package
// calls.
func (w *Workspace) Core() *workspace.Workspace { return w.core }

// Source returns the position registry backing LSP coordinate
// conversion.
func (w *Workspace) Source() *location.Registry { return w.source }

// PositionEncoding returns the encoding negotiated with the client.
func (w *Workspace) PositionEncoding() PositionEncoding { return w.enc }

// sourceIDFor resolves uri to the [location.SourceID] this workspace
// tracks it under.
func sourceIDFor(uri string) (location.SourceID, error) {
	path, err := URIToPath(uri)
	if err != nil {
		return location.SourceID{}, err
	}
	return location.SourceIDFromPath(path)
}

// Notifier sends an LSP notification; captured from a glsp.Context so
// callers outside this package never need to import glsp directly.
type Notifier func(method string, params any)

// Open records uri as newly opened with text, registers its content, and
// (re)populates the workspace. Diagnostics are published through notify.
func (w *Workspace) Open(notify Notifier, uri string, version int, text string) {
	sourceID, err := sourceIDFor(uri)
	if err != nil {
		w.logger.Warn("open: unresolvable uri", slog.String("uri", uri), slog.String("error", err.Error()))
		return
	}
	if !isSupportedURI(uri) {
		w.logger.Debug("open: unsupported extension, ignoring", slog.String("uri", uri))
		return
	}

	w.mu.Lock()
	w.open[sourceID] = &document{uri: uri, version: version, text: text}
	w.mu.Unlock()

	w.reanalyze(notify, sourceID, text)
}

// Change updates uri's tracked text to the full new content (the server
// advertises full-text sync) and re-populates.
func (w *Workspace) Change(notify Notifier, uri string, version int, text string) {
	sourceID, err := sourceIDFor(uri)
	if err != nil {
		return
	}
	w.mu.Lock()
	doc, ok := w.open[sourceID]
	if !ok {
		w.mu.Unlock()
		return
	}
	doc.version = version
	doc.text = text
	w.mu.Unlock()

	w.reanalyze(notify, sourceID, text)
}

// Close drops uri's open-document tracking. The symbol table keeps its
// last-populated contributions; spec.md never requires purging on close,
// only on content replacement or explicit removal.
func (w *Workspace) Close(uri string) {
	sourceID, err := sourceIDFor(uri)
	if err != nil {
		return
	}
	w.mu.Lock()
	delete(w.open, sourceID)
	w.mu.Unlock()
}

// reanalyze registers text for sourceID, parses it, adds/replaces it in
// the core workspace, repopulates, and publishes diagnostics.
func (w *Workspace) reanalyze(notify Notifier, sourceID location.SourceID, text string) {
	if err := w.source.Register(sourceID, []byte(text)); err != nil {
		w.logger.Warn("register source failed", slog.String("source", sourceID.String()), slog.String("error", err.Error()))
		w.source.Clear() // a collision means stale content; the registry rebuilds on next access
		_ = w.source.Register(sourceID, []byte(text))
	}

	result := w.parse(sourceID, text, w.source)
	content, hasContent := result.Content()
	if !hasContent {
		w.publishParseErrors(notify, sourceID, result.Errors())
		return
	}

	if err := w.core.AddFile(sourceID, content); err != nil {
		w.logger.Warn("add file failed", slog.String("source", sourceID.String()), slog.String("error", err.Error()))
		return
	}
	if err := w.core.PopulateFile(sourceID); err != nil {
		w.logger.Warn("populate failed", slog.String("source", sourceID.String()), slog.String("error", err.Error()))
		return
	}

	issues := w.core.DiagnosticsFor(sourceID)
	issues = append(append([]diag.Issue{}, issues...), result.Errors()...)
	w.publish(notify, sourceID, issues)
}

func (w *Workspace) publishParseErrors(notify Notifier, sourceID location.SourceID, errors []diag.Issue) {
	w.publish(notify, sourceID, errors)
}

// publish sends textDocument/publishDiagnostics for sourceID, sorted by
// span for deterministic client-side ordering.
func (w *Workspace) publish(notify Notifier, sourceID location.SourceID, issues []diag.Issue) {
	if notify == nil {
		return
	}
	sorted := append([]diag.Issue{}, issues...)
	sort.Slice(sorted, func(i, j int) bool { return location.Compare(sorted[i].Span(), sorted[j].Span()) < 0 })

	w.mu.Lock()
	uri := sourceID.String()
	if doc, ok := w.open[sourceID]; ok {
		uri = doc.uri
	}
	w.mu.Unlock()

	notify("textDocument/publishDiagnostics", publishDiagnosticsParams(uri, diagnosticsForFile(w.source, sorted, w.enc)))
}

// DocumentPosition converts an LSP (line, char) pair for uri into a
// [location.SourceID] and [location.Position], for providers to hand to
// the query package.
func (w *Workspace) DocumentPosition(uri string, line, char int) (location.SourceID, location.Position, bool) {
	sourceID, err := sourceIDFor(uri)
	if err != nil {
		return location.SourceID{}, location.Position{}, false
	}
	pos, ok := positionFromLSP(w.source, sourceID, line, char, w.enc)
	if !ok {
		return location.SourceID{}, location.Position{}, false
	}
	return sourceID, pos, true
}

// URIFor returns the client-facing URI currently open for sourceID, or
// its own String() if the file isn't (or is no longer) open — e.g. a
// rename/reference result landing in an imported, unopened file.
func (w *Workspace) URIFor(sourceID location.SourceID) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if doc, ok := w.open[sourceID]; ok {
		return doc.uri
	}
	if cp, ok := sourceID.CanonicalPath(); ok {
		return PathToURI(cp.String())
	}
	return sourceID.String()
}

// Range converts a span to an LSP range pair, in the negotiated encoding.
func (w *Workspace) Range(span location.Span) (start, end [2]int) {
	return spanToLSPRange(w.source, span, w.enc)
}

func publishDiagnosticsParams(uri string, diagnostics any) map[string]any {
	return map[string]any{"uri": uri, "diagnostics": diagnostics}
}
