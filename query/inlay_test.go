package query

import (
	"testing"

	"github.com/sysml-tools/semcore/location"
)

func TestInlayHints(t *testing.T) {
	table, _, _, file := buildFixture(t)

	hints := InlayHints(table, file)
	if len(hints) != 1 {
		t.Fatalf("len(hints) = %d, want 1: %+v", len(hints), hints)
	}
	if hints[0].Span != location.Range(file, 4, 17, 4, 23) {
		t.Errorf("hints[0].Span = %+v, want engine1's FeatureType span", hints[0].Span)
	}
	if hints[0].Label != "Engine" {
		t.Errorf("hints[0].Label = %q, want %q", hints[0].Label, "Engine")
	}
}
