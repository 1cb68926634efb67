package resolve

import (
	"github.com/sysml-tools/semcore/symtab"
)

// Resolve resolves a possibly qualified name string against table, per
// spec.md §4.3:
//
//  1. If name has no `::`, delegate to table.Lookup.
//  2. Otherwise split by `::`, resolve the first component locally, then
//     for each subsequent component confirm the current symbol is a
//     namespace-bearing variant (Package or Classifier), synthesize the
//     next qualified name by concatenation, and look it up in the
//     qualified index.
//  3. Any step failing returns (nil, false).
//
// If the final resolved symbol is an Alias, Resolve follows its target one
// hop via the qualified index and returns that instead — chained aliases
// are not transitively resolved, by design (spec.md §9 open question,
// resolved here in favor of single-hop alias transparency).
func Resolve(table *symtab.SymbolTable, name string) (*symtab.Symbol, bool) {
	sym, ok := resolveRaw(table, name)
	if !ok {
		return nil, false
	}
	if sym.Kind == symtab.Alias {
		if target, ok := table.LookupQualified(sym.AliasTarget); ok {
			return target, true
		}
		return nil, false
	}
	return sym, true
}

func resolveRaw(table *symtab.SymbolTable, name string) (*symtab.Symbol, bool) {
	components := Parse(name)
	if len(components) == 0 {
		return nil, false
	}
	if len(components) == 1 {
		return table.Lookup(components[0])
	}

	cur, ok := table.Lookup(components[0])
	if !ok {
		return nil, false
	}
	qn := cur.QualifiedName
	for _, comp := range components[1:] {
		if !isNamespaceBearing(cur) {
			return nil, false
		}
		qn = Join(qn, comp)
		next, ok := table.LookupQualified(qn)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// isNamespaceBearing reports whether sym's qualified-name path may be
// extended with a further `::` component, per spec.md §4.3 step 3:
// Package or Classifier only.
func isNamespaceBearing(sym *symtab.Symbol) bool {
	return sym.Kind == symtab.Package || sym.Kind == symtab.Classifier
}
