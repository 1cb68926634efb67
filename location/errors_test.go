package location

import (
	"errors"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{ErrEmptySourceID, ErrAbsolutePathSourceID, ErrUNCPath, ErrNotAbsolute}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			if errors.Is(a, b) {
				t.Errorf("sentinel %v should not satisfy errors.Is against %v", a, b)
			}
		}
	}
}

func TestSourceIDFromPath_WrapsNothingSentinel(t *testing.T) {
	// A relative path always resolves via filepath.Abs, so SourceIDFromPath
	// itself never surfaces ErrNotAbsolute; that sentinel is reserved for
	// callers that require an already-absolute input.
	if _, err := SourceIDFromPath("."); err != nil {
		t.Fatalf("SourceIDFromPath(\".\") unexpected error: %v", err)
	}
}
