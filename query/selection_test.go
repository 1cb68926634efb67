package query

import (
	"testing"

	"github.com/sysml-tools/semcore/location"
)

func TestSelectionRanges_nestedChain(t *testing.T) {
	_, _, syntax, file := buildFixture(t)

	// Line 5 sits inside engine1 (lines 4-6) and its enclosing System
	// (lines 3-7), but not inside Engine (lines 0-2).
	pos := location.NewPosition(5, 3, 0)
	chain := SelectionRanges(syntax, pos)

	if len(chain) != 2 {
		t.Fatalf("len(chain) = %d, want 2: %+v", len(chain), chain)
	}
	if chain[0] != location.Range(file, 4, 2, 6, 3) {
		t.Errorf("chain[0] (smallest) = %+v, want engine1's span", chain[0])
	}
	if chain[1] != location.Range(file, 3, 0, 7, 1) {
		t.Errorf("chain[1] (largest) = %+v, want System's span", chain[1])
	}
}

func TestSelectionRanges_outsideAnySpan(t *testing.T) {
	_, _, syntax, _ := buildFixture(t)

	pos := location.NewPosition(20, 0, 0)
	if chain := SelectionRanges(syntax, pos); len(chain) != 0 {
		t.Errorf("chain = %+v, want empty", chain)
	}
}
