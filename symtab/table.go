package symtab

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sysml-tools/semcore/location"
)

// DuplicateError reports a failed insertion: name is already bound directly
// in the target scope.
type DuplicateError struct {
	Name    string
	ScopeID ScopeID
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("symtab: %q is already defined in scope %d", e.Name, e.ScopeID)
}

// SymbolTable owns the scope tree, the qualified-name index, the current
// scope stack used while populating a file, and the file currently being
// populated.
type SymbolTable struct {
	scopes         []*Scope
	qualifiedIndex map[string]*Symbol
	scopeStack     []ScopeID
	currentFile    location.SourceID
}

// New creates an empty table with only the root scope (ID 0).
func New() *SymbolTable {
	root := newScope(0, NoScope)
	return &SymbolTable{
		scopes:         []*Scope{root},
		qualifiedIndex: make(map[string]*Symbol),
		scopeStack:     []ScopeID{0},
	}
}

// SetCurrentFile records the file being populated; newly inserted symbols
// are tagged with it.
func (t *SymbolTable) SetCurrentFile(file location.SourceID) {
	t.currentFile = file
}

// CurrentFile returns the file currently being populated.
func (t *SymbolTable) CurrentFile() location.SourceID {
	return t.currentFile
}

// CurrentScope returns the ID of the innermost active scope.
func (t *SymbolTable) CurrentScope() ScopeID {
	return t.scopeStack[len(t.scopeStack)-1]
}

// EnterScope creates a new child scope under the current scope, pushes it
// as current, and returns its ID.
func (t *SymbolTable) EnterScope() ScopeID {
	parent := t.CurrentScope()
	id := ScopeID(len(t.scopes))
	child := newScope(id, parent)
	t.scopes = append(t.scopes, child)
	t.scopes[parent].children = append(t.scopes[parent].children, id)
	t.scopeStack = append(t.scopeStack, id)
	return id
}

// EnterExistingScope pushes an already-created scope (one returned by an
// earlier EnterScope call) as current, without creating a new one. The
// reference collector uses this to replay the adapter's exact scope
// nesting on its second pass over the same file, so unqualified lookups
// resolve against the same scope chain the declarations were populated
// into.
func (t *SymbolTable) EnterExistingScope(id ScopeID) {
	t.scopeStack = append(t.scopeStack, id)
}

// ExitScope pops the current scope, returning to its parent. Panics if
// called while the root scope is current — every EnterScope must be
// matched by exactly one ExitScope.
func (t *SymbolTable) ExitScope() {
	if len(t.scopeStack) <= 1 {
		panic("symtab: ExitScope called with no scope to exit")
	}
	t.scopeStack = t.scopeStack[:len(t.scopeStack)-1]
}

// Scope returns the scope with the given ID. Panics on an out-of-range ID,
// which indicates a caller is holding a stale or foreign ScopeID.
func (t *SymbolTable) Scope(id ScopeID) *Scope {
	return t.scopes[id]
}

// Insert binds name in the current scope to sym. On success, sym.ScopeID,
// sym.SourceFile, and the qualified-name index are updated atomically with
// the scope insertion. Fails with *DuplicateError, without mutating the
// table, if name is already bound directly in the current scope.
func (t *SymbolTable) Insert(name string, sym *Symbol) error {
	scope := t.scopes[t.CurrentScope()]
	if _, exists := scope.symbols[name]; exists {
		return &DuplicateError{Name: name, ScopeID: scope.id}
	}
	sym.ScopeID = scope.id
	sym.SourceFile = t.currentFile
	scope.symbols[name] = sym
	t.qualifiedIndex[sym.QualifiedName] = sym
	return nil
}

// AddImport inserts an Import symbol into the current scope like Insert,
// and additionally registers it for wildcard-import visibility.
func (t *SymbolTable) AddImport(name string, sym *Symbol) error {
	if err := t.Insert(name, sym); err != nil {
		return err
	}
	scope := t.scopes[sym.ScopeID]
	scope.imports = append(scope.imports, sym)
	return nil
}

// Lookup resolves name by (1) the active scope, (2) its ancestors, then
// (3) wildcard imports visible from the active scope or any ancestor, in
// reverse insertion order of their enclosing scope. Imports never override
// a name already bound in an ancestor.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	for i := len(t.scopeStack) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[t.scopeStack[i]].symbols[name]; ok {
			return sym, true
		}
	}
	for i := len(t.scopeStack) - 1; i >= 0; i-- {
		scope := t.scopes[t.scopeStack[i]]
		for j := len(scope.imports) - 1; j >= 0; j-- {
			imp := scope.imports[j]
			if !imp.ImportIsWildcard {
				continue
			}
			if sym, ok := t.lookupUnderImport(imp, name); ok {
				return sym, true
			}
		}
	}
	return nil, false
}

// lookupUnderImport resolves name as a symbol directly reachable via imp's
// target namespace — only the namespace's own scope is consulted, not its
// ancestors or further wildcard imports.
func (t *SymbolTable) lookupUnderImport(imp *Symbol, name string) (*Symbol, bool) {
	target, ok := t.qualifiedIndex[importBasePath(imp.ImportPath)]
	if !ok || !target.HasOwnScope {
		return nil, false
	}
	return t.scopes[target.OwnScope].Symbol(name)
}

// importBasePath strips a trailing wildcard marker ("::*" or "::**", or a
// bare "*") from an import path, leaving the namespace path the wildcard
// ranges over. Duplicated (in miniature) from resolve.Base: symtab cannot
// import resolve, which itself depends on symtab for name resolution.
func importBasePath(path string) string {
	switch {
	case path == "*":
		return ""
	case strings.HasSuffix(path, "::**"):
		return strings.TrimSuffix(path, "::**")
	case strings.HasSuffix(path, "::*"):
		return strings.TrimSuffix(path, "::*")
	default:
		return path
	}
}

// LookupQualified resolves a fully qualified name directly via the index,
// bypassing scope-chain walking entirely.
func (t *SymbolTable) LookupQualified(qualifiedName string) (*Symbol, bool) {
	sym, ok := t.qualifiedIndex[qualifiedName]
	return sym, ok
}

// AllSymbols iterates every (qualified name, symbol) pair in the table, in
// no particular order.
func (t *SymbolTable) AllSymbols() iter.Seq2[string, *Symbol] {
	return func(yield func(string, *Symbol) bool) {
		for qn, sym := range t.qualifiedIndex {
			if !yield(qn, sym) {
				return
			}
		}
	}
}

// AddReference appends (file, span) to the references of the symbol bound
// to qualifiedName, reporting whether that symbol exists.
func (t *SymbolTable) AddReference(qualifiedName string, file location.SourceID, span location.Span) bool {
	sym, ok := t.qualifiedIndex[qualifiedName]
	if !ok {
		return false
	}
	sym.AddReference(Reference{File: file, Span: span})
	return true
}

// RemoveFile deletes every symbol whose SourceFile equals file from the
// qualified-name index and from its owning scope's symbol map. Scopes
// themselves are never removed (other symbols may reference them by ID),
// so a scope can become empty without being pruned from the tree.
func (t *SymbolTable) RemoveFile(file location.SourceID) {
	for qn, sym := range t.qualifiedIndex {
		if sym.SourceFile != file {
			continue
		}
		delete(t.qualifiedIndex, qn)
		scope := t.scopes[sym.ScopeID]
		for name, s := range scope.symbols {
			if s == sym {
				delete(scope.symbols, name)
			}
		}
		if sym.Kind == Import {
			scope.imports = removeImport(scope.imports, sym)
		}
	}
}

func removeImport(imports []*Symbol, target *Symbol) []*Symbol {
	out := imports[:0]
	for _, imp := range imports {
		if imp != target {
			out = append(out, imp)
		}
	}
	return out
}

// Len returns the total number of symbols indexed by qualified name.
func (t *SymbolTable) Len() int {
	return len(t.qualifiedIndex)
}
