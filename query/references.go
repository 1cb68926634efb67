package query

import (
	"sort"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/symtab"
)

// FindReferences resolves pos in file to its symbol, then returns every
// occurrence of that symbol across every file it was referenced from: its
// declaration plus every recorded reference, sorted by span.
func FindReferences(table *symtab.SymbolTable, file location.SourceID, pos location.Position) ([]location.Span, bool) {
	occ, ok := At(table, file, pos)
	if !ok {
		return nil, false
	}
	sym := occ.Symbol
	spans := []location.Span{sym.DeclarationSpan}
	for _, ref := range sym.References() {
		spans = append(spans, ref.Span)
	}
	sort.Slice(spans, func(i, j int) bool { return location.Compare(spans[i], spans[j]) < 0 })
	return spans, true
}
