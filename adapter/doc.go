// Package adapter implements the dialect-agnostic half of the syntax
// adapter layer (C7): walking an already-parsed astx.SyntaxFile and
// emitting symbol-table insertions and relationship-graph edges. The
// dialect-specific halves, adapter/sysml and adapter/kerml, supply only
// the kind-normalization table a raw grammar production Kind maps to;
// the walk itself — the populate protocol from spec.md §4.4 — is shared.
package adapter
