package diag

import (
	"fmt"
	"strings"

	"github.com/sysml-tools/semcore/location"
)

// SourceProvider supplies source content for excerpt rendering.
// [location.Registry] implements this interface.
type SourceProvider interface {
	Content(span location.Span) ([]byte, bool)
}

// rendererConfig holds renderer configuration.
type rendererConfig struct {
	provider   SourceProvider
	excerpts   bool
	moduleRoot string
	colorize   bool
}

// RendererOption configures [Renderer] behavior.
type RendererOption func(*rendererConfig)

// WithSourceProvider sets the source content provider for excerpt
// rendering. A nil provider disables excerpts without error.
func WithSourceProvider(p SourceProvider) RendererOption {
	return func(c *rendererConfig) { c.provider = p }
}

// WithExcerpts enables or disables a one-line source excerpt under each
// issue. Excerpts require a SourceProvider; without one they are silently
// omitted even if enabled.
func WithExcerpts(on bool) RendererOption {
	return func(c *rendererConfig) { c.excerpts = on }
}

// WithModuleRoot relativizes displayed paths that start with root.
func WithModuleRoot(root string) RendererOption {
	return func(c *rendererConfig) { c.moduleRoot = root }
}

// WithColors enables ANSI color codes around the severity label.
func WithColors(on bool) RendererOption {
	return func(c *rendererConfig) { c.colorize = on }
}

// Renderer formats issues per the engine's external display contract:
// "file:line+1:column+1: <Severity>: <message>" (the +1 is already applied
// by [location.Span.String]; line and column are zero-indexed internally
// and shown 1-based).
type Renderer struct {
	provider   SourceProvider
	excerpts   bool
	moduleRoot string
	colorize   bool
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...RendererOption) *Renderer {
	cfg := &rendererConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Renderer{
		provider:   cfg.provider,
		excerpts:   cfg.excerpts,
		moduleRoot: cfg.moduleRoot,
		colorize:   cfg.colorize,
	}
}

// FormatIssue formats a single issue as text.
func (r *Renderer) FormatIssue(issue Issue) string {
	var sb strings.Builder
	r.formatIssueToBuilder(&sb, issue)
	return sb.String()
}

// FormatResult formats every issue in res, one per line (plus any
// excerpt/related lines), in the result's sorted order.
func (r *Renderer) FormatResult(res Result) string {
	var sb strings.Builder
	first := true
	for issue := range res.Issues() {
		if !first {
			sb.WriteString("\n")
		}
		r.formatIssueToBuilder(&sb, issue)
		first = false
	}
	return sb.String()
}

func (r *Renderer) formatIssueToBuilder(sb *strings.Builder, issue Issue) {
	sb.WriteString(r.formatLocation(issue.Span()))
	sb.WriteString(": ")
	r.writeSeverity(sb, issue.Severity())
	sb.WriteString(": ")
	sb.WriteString(issue.Message())

	if hint := issue.Hint(); hint != "" {
		sb.WriteString("\n  hint: ")
		sb.WriteString(hint)
	}

	if r.excerpts && r.provider != nil && issue.HasSpan() {
		r.writeExcerpt(sb, issue)
	}

	for _, rel := range issue.Related() {
		sb.WriteString("\n  note: ")
		sb.WriteString(rel.Message)
		if !rel.Span.IsZero() {
			sb.WriteString("\n    --> ")
			sb.WriteString(r.formatLocation(rel.Span))
		}
	}
}

func (r *Renderer) formatLocation(span location.Span) string {
	if span.IsZero() {
		return "<unknown>"
	}
	source := span.Source.String()
	if root := strings.TrimSuffix(r.moduleRoot, "/"); root != "" {
		if source == root {
			source = "."
		} else if rel, ok := strings.CutPrefix(source, root+"/"); ok {
			source = rel
		}
	}
	if span.IsPoint() {
		return fmt.Sprintf("%s:%s", source, span.Start.String())
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", source, span.Start.Line+1, span.Start.Column+1, span.End.Line+1, span.End.Column+1)
}

func (r *Renderer) writeSeverity(sb *strings.Builder, sev Severity) {
	label := sev.String()
	if sev == Fatal {
		label = "error" // user-facing text never distinguishes Fatal
	}
	if !r.colorize {
		sb.WriteString(label)
		return
	}
	switch sev {
	case Fatal, Error:
		sb.WriteString("\033[1;31m" + label + "\033[0m")
	case Warning:
		sb.WriteString("\033[1;33m" + label + "\033[0m")
	case Info:
		sb.WriteString("\033[1;36m" + label + "\033[0m")
	case Hint:
		sb.WriteString("\033[1;32m" + label + "\033[0m")
	default:
		sb.WriteString(label)
	}
}

func (r *Renderer) writeExcerpt(sb *strings.Builder, issue Issue) {
	span := issue.Span()
	if !span.Start.IsKnown() {
		return
	}
	content, ok := r.provider.Content(span)
	if !ok {
		return
	}
	lines := strings.Split(string(content), "\n")
	if span.Start.Line < 0 || span.Start.Line >= len(lines) {
		return
	}
	sb.WriteString("\n  | ")
	sb.WriteString(lines[span.Start.Line])
}
