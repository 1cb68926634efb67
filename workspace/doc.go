// Package workspace implements the workspace (C10): the single owner of a
// project's symbol table, relationship graph, and dependency graph, and
// the file-lifecycle operations (add, remove, populate) that mutate them.
//
// A Workspace is single-threaded cooperative: callers must serialize
// mutations themselves (see spec.md §5), exactly as every other package in
// this module assumes of its caller. Query-only access may run
// concurrently with itself but never with a mutation.
package workspace
