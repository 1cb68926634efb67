// Package refcollect implements the reference collector (C9): a second
// pass over an already-populated symbol table and its source AST that
// resolves every textual occurrence left unresolved by the adapter —
// relationship targets, feature types, alias targets — and appends the
// resolution site to the target symbol's reference list. Unresolved
// occurrences are silently dropped; they are not semantic errors at this
// stage.
package refcollect
