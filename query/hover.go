package query

import (
	"fmt"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/symtab"
)

// HoverInfo is what to show for a hover request: the resolved symbol and
// a short rendered description of it.
type HoverInfo struct {
	Symbol  *symtab.Symbol
	Content string
}

// Hover resolves pos in file to its symbol — its own declaration, or the
// target of a reference at that position — and renders a one-line
// description.
func Hover(table *symtab.SymbolTable, file location.SourceID, pos location.Position) (HoverInfo, bool) {
	occ, ok := At(table, file, pos)
	if !ok {
		return HoverInfo{}, false
	}
	return HoverInfo{Symbol: occ.Symbol, Content: describe(occ.Symbol)}, true
}

func describe(sym *symtab.Symbol) string {
	if sym.NormalizedKind != "" {
		return fmt.Sprintf("%s (%s) %s", sym.Kind, sym.NormalizedKind, sym.QualifiedName)
	}
	return fmt.Sprintf("%s %s", sym.Kind, sym.QualifiedName)
}
