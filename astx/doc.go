// Package astx defines the dialect-tagged syntax tree and parse-result
// envelope that sits between the external parser and the semantic core.
//
// A [SyntaxFile] is the generic, dialect-tagged tree an adapter walks to
// populate the symbol table and relationship graph; a [ParseResult] is what
// the external parsing step actually returns — either a SyntaxFile, or a
// list of positioned parse errors, or both (a best-effort recovery parse can
// produce a partial tree alongside diagnostics).
package astx
