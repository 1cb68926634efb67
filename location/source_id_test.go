package location

import "testing"

func TestNewSyntheticSourceID(t *testing.T) {
	sid := NewSyntheticSourceID("stdlib://sysml.library/Base")
	if sid.IsFilePath() {
		t.Error("synthetic source should not be a file path")
	}
	if sid.IsZero() {
		t.Error("a populated synthetic source should not be zero")
	}
	if got, want := sid.String(), "stdlib://sysml.library/Base"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestNewSyntheticSourceID_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for empty identifier")
		}
	}()
	NewSyntheticSourceID("")
}

func TestNewSyntheticSourceID_PanicsOnAbsolutePath(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for absolute-path-like identifier")
		}
	}()
	NewSyntheticSourceID("/abs/path/foo.sysml")
}

func TestSourceIDFromPath(t *testing.T) {
	sid, err := SourceIDFromPath(".")
	if err != nil {
		t.Fatalf("SourceIDFromPath() error = %v", err)
	}
	if !sid.IsFilePath() {
		t.Error("file-backed source ID should report IsFilePath")
	}
	if _, ok := sid.CanonicalPath(); !ok {
		t.Error("CanonicalPath() should succeed for a file-backed source")
	}
}

func TestSourceID_Equality(t *testing.T) {
	a := NewSyntheticSourceID("test://unit/a.sysml")
	b := NewSyntheticSourceID("test://unit/a.sysml")
	c := NewSyntheticSourceID("test://unit/b.sysml")

	if a != b {
		t.Error("identical synthetic IDs should compare equal")
	}
	if a == c {
		t.Error("distinct synthetic IDs should not compare equal")
	}

	m := map[SourceID]int{a: 1}
	if _, ok := m[b]; !ok {
		t.Error("SourceID should be usable as a map key across equal values")
	}
}

func TestSourceID_IsZero(t *testing.T) {
	if !(SourceID{}).IsZero() {
		t.Error("zero-value SourceID should report IsZero")
	}
	if NewSyntheticSourceID("x").IsZero() {
		t.Error("populated SourceID should not report IsZero")
	}
}
