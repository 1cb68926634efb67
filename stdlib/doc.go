// Package stdlib implements the standard-library loader (C12): eager or
// lazy ingestion of a bundled namespace tree into a workspace, per
// spec.md §4.8.
//
// File-system traversal and extension filtering are external concerns
// (spec.md §1 lists them as out of scope): Loader takes an
// already-discovered list of paths and a ParseFunc rather than walking a
// directory itself. The grammar/parser behind ParseFunc is likewise an
// external collaborator; this package only owns what happens once a path
// has produced a syntax tree.
package stdlib
