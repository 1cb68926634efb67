package query

import (
	"sort"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
)

// selectionRangeLineWeight is the LARGE factor spec.md §4.9's selection
// size function multiplies line differences by, so that any span crossing
// even one more line outranks an arbitrarily wide single-line span.
const selectionRangeLineWeight = 1 << 20

// SelectionRanges returns the chain of AST node spans in file that contain
// pos, ordered from smallest to largest by spec.md §4.9's size function:
// (end.line - start.line) * LARGE + (end.column - start.column).
func SelectionRanges(file astx.SyntaxFile, pos location.Position) []location.Span {
	var chain []location.Span

	if file.Namespace != nil && file.Namespace.Span.ContainsOrEquals(pos) {
		chain = append(chain, file.Namespace.Span)
	}

	var walk func(el astx.Element)
	walk = func(el astx.Element) {
		if el.Span.ContainsOrEquals(pos) {
			chain = append(chain, el.Span)
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	for _, el := range file.Elements {
		walk(el)
	}

	sort.Slice(chain, func(i, j int) bool { return selectionSize(chain[i]) < selectionSize(chain[j]) })
	return chain
}

func selectionSize(s location.Span) int {
	return (s.End.Line-s.Start.Line)*selectionRangeLineWeight + (s.End.Column - s.Start.Column)
}
