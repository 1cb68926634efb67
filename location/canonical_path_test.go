package location

import (
	"errors"
	"testing"
)

func TestNewCanonicalPath(t *testing.T) {
	cp, err := NewCanonicalPath(".")
	if err != nil {
		t.Fatalf("NewCanonicalPath() error = %v", err)
	}
	if cp.IsZero() {
		t.Error("a resolved path should not be zero")
	}
	if cp.String() == "" || cp.String()[0] != '/' {
		t.Errorf("String() = %q; want absolute forward-slashed path", cp.String())
	}
}

func TestNewCanonicalPath_RejectsUNC(t *testing.T) {
	_, err := NewCanonicalPath("//server/share/file")
	if !errors.Is(err, ErrUNCPath) {
		t.Errorf("expected ErrUNCPath, got %v", err)
	}
}

func TestCanonicalPath_BaseAndDir(t *testing.T) {
	cp := MustCanonicalPath("/a/b/c.sysml")
	if got, want := cp.Base(), "c.sysml"; got != want {
		t.Errorf("Base() = %q; want %q", got, want)
	}
	if got, want := cp.Dir().String(), "/a/b"; got != want {
		t.Errorf("Dir() = %q; want %q", got, want)
	}
}

func TestCanonicalPath_Join(t *testing.T) {
	cp := MustCanonicalPath("/a/b")
	joined, err := cp.Join("c", "d.sysml")
	if err != nil {
		t.Fatalf("Join() error = %v", err)
	}
	if got, want := joined.String(), "/a/b/c/d.sysml"; got != want {
		t.Errorf("Join() = %q; want %q", got, want)
	}
}

func TestCanonicalPath_Join_RejectsAbsoluteElement(t *testing.T) {
	cp := MustCanonicalPath("/a/b")
	if _, err := cp.Join("/etc/passwd"); err == nil {
		t.Error("Join() should reject an absolute-looking element")
	}
}

func TestMustCanonicalPath_PanicsOnUNC(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for UNC path")
		}
	}()
	MustCanonicalPath("//server/share")
}
