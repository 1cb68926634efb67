// Package lsp hosts the Language Server Protocol front end over the
// semantic core: it wraps a [github.com/tliron/glsp] server, keeps a
// [workspace.Workspace] in sync with open documents, and answers hover,
// go-to-definition, find-references, rename, folding, selection, inlay
// hint, semantic-token, and diagnostic requests by delegating to the
// query package. Grammar parsing is an external collaborator supplied as
// a [ParseFunc]; this package never depends on a concrete grammar.
package lsp
