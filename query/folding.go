package query

import (
	"sort"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
)

// FoldingKind distinguishes a plain declaration fold from a comment fold.
type FoldingKind uint8

const (
	FoldingRegion FoldingKind = iota
	FoldingComment
)

// String returns a human-readable label, per spec.md §6's "Region,
// Comment" folding-range kinds.
func (k FoldingKind) String() string {
	if k == FoldingComment {
		return "Comment"
	}
	return "Region"
}

// FoldingRange is a single foldable line range.
type FoldingRange struct {
	StartLine int
	EndLine   int
	Kind      FoldingKind
}

// FoldingRanges walks file's elements (packages, definitions, usages,
// classifiers, features, and comments — every Kind the adapter's kind
// table can produce) and emits a range for every one whose span covers
// more than one line, sorted by start line. Imports and aliases are
// walked like any other element; they simply never produce a multi-line
// span in practice.
func FoldingRanges(file astx.SyntaxFile) []FoldingRange {
	var out []FoldingRange

	if file.Namespace != nil {
		if r, ok := foldingRangeFor(file.Namespace.Span, false); ok {
			out = append(out, r)
		}
	}

	var walk func(el astx.Element)
	walk = func(el astx.Element) {
		if r, ok := foldingRangeFor(el.Span, el.Kind == "Comment"); ok {
			out = append(out, r)
		}
		for _, child := range el.Children {
			walk(child)
		}
	}
	for _, el := range file.Elements {
		walk(el)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartLine < out[j].StartLine })
	return out
}

func foldingRangeFor(span location.Span, isComment bool) (FoldingRange, bool) {
	if span.IsZero() || span.End.Line <= span.Start.Line {
		return FoldingRange{}, false
	}
	kind := FoldingRegion
	if isComment {
		kind = FoldingComment
	}
	return FoldingRange{StartLine: span.Start.Line, EndLine: span.End.Line, Kind: kind}, true
}
