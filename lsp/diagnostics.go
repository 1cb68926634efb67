package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/location"
)

// severityToLSP converts our Severity to the LSP DiagnosticSeverity scale
// (1 = Error ... 4 = Hint); Fatal, an internal-only severity never
// produced by the adapter/validator layers, also maps to Error.
func severityToLSP(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	case diag.Info:
		return protocol.DiagnosticSeverityInformation
	case diag.Hint:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

// toLSPDiagnostic converts one issue into a protocol.Diagnostic, or
// returns (zero, false) if it carries no usable span.
func toLSPDiagnostic(registry *location.Registry, issue diag.Issue, enc PositionEncoding) (protocol.Diagnostic, bool) {
	span := issue.Span()
	if span.IsZero() || !span.Start.IsKnown() {
		return protocol.Diagnostic{}, false
	}
	start, end := spanToLSPRange(registry, span, enc)

	severity := severityToLSP(issue.Severity())
	source := "semcore"
	code := issue.Code().String()
	d := protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: toUInteger(start[0]), Character: toUInteger(start[1])},
			End:   protocol.Position{Line: toUInteger(end[0]), Character: toUInteger(end[1])},
		},
		Severity: &severity,
		Source:   &source,
		Message:  issue.Message(),
	}
	if code != "" {
		d.Code = code
	}
	return d, true
}

// diagnosticsForFile converts every diagnostic path most recently
// produced into protocol.Diagnostic values, in source order. Returns an
// empty (non-nil) slice when there are none, so JSON serializes "[]"
// rather than "null" per the LSP publishDiagnostics contract.
func diagnosticsForFile(registry *location.Registry, issues []diag.Issue, enc PositionEncoding) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(issues))
	for _, issue := range issues {
		if d, ok := toLSPDiagnostic(registry, issue, enc); ok {
			out = append(out, d)
		}
	}
	return out
}

func toUInteger(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	return protocol.UInteger(n)
}
