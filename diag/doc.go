// Package diag provides structured diagnostics for the semantic analysis
// engine.
//
// diag sits at the foundation tier alongside [location]; every higher-level
// package reports failures as diag.Issue values rather than ad hoc strings.
//
// # Design principles
//
//   - Structured data, string-last presentation: location is stored as a
//     [location.Span], never embedded in message text.
//   - Immutable issues: [Issue] fields are unexported; read them through
//     accessor methods. Construct issues with [NewIssue] and [IssueBuilder].
//   - Stable codes: [Code] values are closed-set identifiers tools can match
//     on even as message text changes.
//   - Deterministic ordering: [Collector.Result] sorts issues by span then
//     code so output is stable across runs and across goroutines.
//   - Precomputed counts: [Collector] and [Result] answer severity queries
//     in O(1).
//
// # Entry point pattern
//
//   - err != nil: catastrophic failure (I/O, internal invariant violation)
//   - err == nil and !result.OK(): semantic failure, represented as issues
//   - err == nil and result.OK(): success (may still carry warnings/hints)
//
// # Package dependencies
//
// diag imports only the standard library and [location]. It must not import
// higher-level packages such as symtab, relgraph, or adapter.
package diag
