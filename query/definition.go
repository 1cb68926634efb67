package query

import (
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/symtab"
)

// Definition resolves pos in file to the declaration span its occurrence
// points at: a reference's target, or the symbol's own declaration if pos
// already sits on one.
func Definition(table *symtab.SymbolTable, file location.SourceID, pos location.Position) (location.Span, bool) {
	occ, ok := At(table, file, pos)
	if !ok {
		return location.Span{}, false
	}
	return occ.Symbol.DeclarationSpan, true
}
