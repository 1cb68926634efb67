package location

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterAndPositionAt(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/a.sysml")
	content := []byte("package P {\n  part x;\n}\n")

	if err := r.Register(src, content); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// Start of file.
	if got, want := r.PositionAt(src, 0), NewPosition(0, 0, 0); got != want {
		t.Errorf("PositionAt(0) = %v; want %v", got, want)
	}

	// Start of second line, right after the newline at byte 12.
	if got, want := r.PositionAt(src, 12), NewPosition(1, 0, 12); got != want {
		t.Errorf("PositionAt(12) = %v; want %v", got, want)
	}

	// EOF position.
	eof := r.PositionAt(src, len(content))
	if !eof.IsKnown() {
		t.Errorf("PositionAt(EOF) should be known, got %v", eof)
	}
}

func TestRegistry_PositionAt_Unregistered(t *testing.T) {
	r := NewRegistry()
	pos := r.PositionAt(NewSyntheticSourceID("test://unit/missing.sysml"), 0)
	if pos.IsKnown() {
		t.Error("PositionAt() for an unregistered source should be unknown")
	}
}

func TestRegistry_PositionAt_OutOfRange(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/a.sysml")
	if err := r.Register(src, []byte("abc")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if r.PositionAt(src, -1).IsKnown() {
		t.Error("negative byte offset should be unknown")
	}
	if r.PositionAt(src, 100).IsKnown() {
		t.Error("out-of-range byte offset should be unknown")
	}
}

func TestRegistry_Register_Idempotent(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/a.sysml")
	content := []byte("x")

	if err := r.Register(src, content); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	if err := r.Register(src, content); err != nil {
		t.Errorf("re-registering identical content should succeed, got %v", err)
	}
}

func TestRegistry_Register_KeyCollision(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/a.sysml")

	if err := r.Register(src, []byte("one")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	err := r.Register(src, []byte("two"))
	var collErr *KeyCollisionError
	if !errors.As(err, &collErr) {
		t.Errorf("Register() with differing content should return *KeyCollisionError, got %v", err)
	}
}

func TestRegistry_ContentIsDefensiveCopy(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/a.sysml")
	original := []byte("abc")

	if err := r.Register(src, original); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	original[0] = 'z'

	got, ok := r.ContentBySource(src)
	if !ok {
		t.Fatal("ContentBySource() should find the registered source")
	}
	if string(got) != "abc" {
		t.Errorf("stored content was mutated via caller's slice: got %q", got)
	}

	got[0] = 'z'
	got2, _ := r.ContentBySource(src)
	if string(got2) != "abc" {
		t.Errorf("returned content should be a defensive copy, got %q", got2)
	}
}

func TestRegistry_RuneToByteOffset(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/unicode.sysml")
	// "héllo": h, é (2 bytes), l, l, o
	content := []byte("héllo")
	if err := r.Register(src, content); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if b, ok := r.RuneToByteOffset(src, 0); !ok || b != 0 {
		t.Errorf("RuneToByteOffset(0) = (%d, %v); want (0, true)", b, ok)
	}
	if b, ok := r.RuneToByteOffset(src, 2); !ok || b != 3 {
		t.Errorf("RuneToByteOffset(2) = (%d, %v); want (3, true), é is 2 bytes", b, ok)
	}
	if b, ok := r.RuneToByteOffset(src, 5); !ok || b != len(content) {
		t.Errorf("RuneToByteOffset(EOF) = (%d, %v); want (%d, true)", b, ok, len(content))
	}
	if _, ok := r.RuneToByteOffset(src, 6); ok {
		t.Error("RuneToByteOffset() past EOF should fail")
	}
}

func TestRegistry_LineStartByte(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/a.sysml")
	if err := r.Register(src, []byte("ab\ncd\n")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if b, ok := r.LineStartByte(src, 0); !ok || b != 0 {
		t.Errorf("LineStartByte(0) = (%d, %v); want (0, true)", b, ok)
	}
	if b, ok := r.LineStartByte(src, 1); !ok || b != 3 {
		t.Errorf("LineStartByte(1) = (%d, %v); want (3, true)", b, ok)
	}
	if _, ok := r.LineStartByte(src, -1); ok {
		t.Error("LineStartByte(-1) should fail")
	}
	if _, ok := r.LineStartByte(src, 99); ok {
		t.Error("LineStartByte() past the last line should fail")
	}
}

func TestRegistry_KeysHasLenClear(t *testing.T) {
	r := NewRegistry()
	a := NewSyntheticSourceID("test://unit/a.sysml")
	b := NewSyntheticSourceID("test://unit/b.sysml")
	_ = r.Register(a, []byte("1"))
	_ = r.Register(b, []byte("2"))

	if r.Len() != 2 {
		t.Errorf("Len() = %d; want 2", r.Len())
	}
	if !r.Has(a) || !r.Has(b) {
		t.Error("Has() should report true for both registered sources")
	}

	keys := r.Keys()
	if len(keys) != 2 || keys[0] != a || keys[1] != b {
		t.Errorf("Keys() = %v; want sorted [%v %v]", keys, a, b)
	}

	r.Clear()
	if r.Len() != 0 || r.Has(a) {
		t.Error("Clear() should remove all registered sources")
	}
}

func TestRegistry_CRLFLineOffsets(t *testing.T) {
	r := NewRegistry()
	src := NewSyntheticSourceID("test://unit/crlf.sysml")
	if err := r.Register(src, []byte("ab\r\ncd")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if b, ok := r.LineStartByte(src, 1); !ok || b != 4 {
		t.Errorf("LineStartByte(1) with CRLF = (%d, %v); want (4, true)", b, ok)
	}
}
