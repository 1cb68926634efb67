package query

import (
	"sort"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/symtab"
)

// InlayHint is a single ": QualifiedName" annotation to render at Span.
type InlayHint struct {
	Span  location.Span
	Label string
}

// InlayHints emits a hint for every usage in file whose declared type is a
// textual reference that resolved successfully: the reference collector
// already recorded that resolution as a reference on the target symbol at
// the usage's UsageTypeSpan, so this looks it up rather than re-resolving
// the name itself (which would require replaying the usage's lexical
// scope, exactly as the collector does during population).
func InlayHints(table *symtab.SymbolTable, file location.SourceID) []InlayHint {
	refs := References(table, file)
	bySpan := make(map[location.Span]*symtab.Symbol, len(refs))
	for _, ref := range refs {
		bySpan[ref.Span] = ref.Target
	}

	var hints []InlayHint
	for _, sym := range Declarations(table, file) {
		if sym.Kind != symtab.Usage || sym.UsageType == "" {
			continue
		}
		target, ok := bySpan[sym.UsageTypeSpan]
		if !ok {
			continue
		}
		hints = append(hints, InlayHint{Span: sym.UsageTypeSpan, Label: target.QualifiedName})
	}
	sort.Slice(hints, func(i, j int) bool { return location.Compare(hints[i].Span, hints[j].Span) < 0 })
	return hints
}
