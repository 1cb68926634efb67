// Package query implements the read-only query services (C11) that sit on
// top of a populated workspace: folding ranges, selection ranges, inlay
// hints, semantic tokens, rename edits, hover, go-to-definition, and
// find-references. Every function here takes a workspace's symbol table
// (plus its relationship graph, for semantic tokens) or a file's AST
// directly, never a *workspace.Workspace, and returns plain data — no LSP
// protocol types. The lsp package is responsible for translating these
// results into glsp/protocol_3_16 wire types.
//
// None of these functions mutate their inputs, matching spec.md §5's
// "query services take shared, read-only access."
package query
