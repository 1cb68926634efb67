// Package location provides source position and span types shared by every
// layer of the semantic core: the parse-result envelope, the symbol table,
// the relationship graph, and the query services all anchor their data to a
// [Span] rooted at a [SourceID].
//
// Positions and columns in this package are zero-indexed, matching the LSP
// wire format and the data model this module implements. Display formatting
// (as used by the CLI and by diagnostic rendering) adds one to both line and
// column so humans see 1-based coordinates.
package location
