// Package symtab implements the hierarchical, scoped symbol table: a tree
// of lexical scopes rooted at scope 0, a qualified-name index for direct
// lookup, and the current-scope/current-file bookkeeping an adapter uses
// while walking a file.
//
// Unlike location and diag, symtab performs no internal locking: the
// semantic core is single-threaded cooperative (only one operation mutates
// a given workspace at a time), so a SymbolTable is safe to use only from
// the goroutine that owns its enclosing workspace.
package symtab
