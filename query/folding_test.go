package query

import (
	"testing"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
)

func TestFoldingRanges(t *testing.T) {
	_, _, syntax, _ := buildFixture(t)

	ranges := FoldingRanges(syntax)
	want := []FoldingRange{
		{StartLine: 0, EndLine: 2, Kind: FoldingRegion},
		{StartLine: 3, EndLine: 7, Kind: FoldingRegion},
		{StartLine: 4, EndLine: 6, Kind: FoldingRegion},
		{StartLine: 9, EndLine: 10, Kind: FoldingComment},
	}
	if len(ranges) != len(want) {
		t.Fatalf("len(ranges) = %d, want %d: %+v", len(ranges), len(want), ranges)
	}
	for i, r := range ranges {
		if r != want[i] {
			t.Errorf("ranges[%d] = %+v, want %+v", i, r, want[i])
		}
	}
}

func TestFoldingRanges_singleLineSpanExcluded(t *testing.T) {
	_, _, syntax, file := buildFixture(t)

	syntax.Elements = append(syntax.Elements, astx.Element{
		Kind: "PartDefinition", Name: "Small",
		Span: location.Range(file, 11, 0, 11, 20),
	})
	for _, r := range FoldingRanges(syntax) {
		if r.StartLine == 11 {
			t.Errorf("single-line element produced a folding range: %+v", r)
		}
	}
}
