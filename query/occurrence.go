package query

import (
	"sort"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/symtab"
)

// ReferenceOccurrence is one resolved textual reference recorded by the
// reference collector: Target is the symbol the occurrence at Span
// resolved to.
type ReferenceOccurrence struct {
	Span   location.Span
	Target *symtab.Symbol
}

// Occurrence is what a position resolved to: a symbol, the span of the
// specific occurrence found there, and whether that occurrence was the
// symbol's own declaration rather than a reference to it.
type Occurrence struct {
	Symbol        *symtab.Symbol
	Span          location.Span
	IsDeclaration bool
}

// Declarations returns every symbol declared in file.
func Declarations(table *symtab.SymbolTable, file location.SourceID) []*symtab.Symbol {
	var out []*symtab.Symbol
	for _, sym := range table.AllSymbols() {
		if sym.SourceFile == file {
			out = append(out, sym)
		}
	}
	return out
}

// References returns every resolved reference occurrence whose site is in
// file, sorted by span. A symbol's declaration contributes no entry here;
// see [Declarations].
func References(table *symtab.SymbolTable, file location.SourceID) []ReferenceOccurrence {
	var out []ReferenceOccurrence
	for _, sym := range table.AllSymbols() {
		for _, ref := range sym.References() {
			if ref.File == file {
				out = append(out, ReferenceOccurrence{Span: ref.Span, Target: sym})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return location.Compare(out[i].Span, out[j].Span) < 0 })
	return out
}

// At resolves pos in file to the occurrence found there. References are
// checked first: a symbol's DeclarationSpan covers its whole body (there
// is no separate name-only span in this model), so a reference textually
// nested inside its enclosing symbol's own declaration — a usage's
// declared type, typically — would otherwise always be shadowed by that
// enclosing declaration. Falling back to Declarations only when no
// reference matches is what lets the cursor still resolve a plain
// declaration name.
func At(table *symtab.SymbolTable, file location.SourceID, pos location.Position) (Occurrence, bool) {
	for _, ref := range References(table, file) {
		if ref.Span.ContainsOrEquals(pos) {
			return Occurrence{Symbol: ref.Target, Span: ref.Span, IsDeclaration: false}, true
		}
	}
	for _, sym := range Declarations(table, file) {
		if sym.DeclarationSpan.ContainsOrEquals(pos) {
			return Occurrence{Symbol: sym, Span: sym.DeclarationSpan, IsDeclaration: true}, true
		}
	}
	return Occurrence{}, false
}
