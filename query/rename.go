package query

import (
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/symtab"
)

// Edit is a single span replacement.
type Edit struct {
	Span    location.Span
	NewText string
}

// RenameEdits resolves pos in file to its symbol, then returns the edits
// needed to rename every occurrence — the declaration and every recorded
// reference, in whichever files they fall in — to newName.
func RenameEdits(table *symtab.SymbolTable, file location.SourceID, pos location.Position, newName string) (map[location.SourceID][]Edit, bool) {
	occ, ok := At(table, file, pos)
	if !ok {
		return nil, false
	}
	sym := occ.Symbol

	edits := make(map[location.SourceID][]Edit)
	edits[sym.SourceFile] = append(edits[sym.SourceFile], Edit{Span: sym.DeclarationSpan, NewText: newName})
	for _, ref := range sym.References() {
		edits[ref.File] = append(edits[ref.File], Edit{Span: ref.Span, NewText: newName})
	}
	return edits, true
}
