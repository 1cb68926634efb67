package location

import "testing"

func TestNewPosition(t *testing.T) {
	p := NewPosition(10, 5, 42)
	if p.Line != 10 {
		t.Errorf("Line = %d; want 10", p.Line)
	}
	if p.Column != 5 {
		t.Errorf("Column = %d; want 5", p.Column)
	}
	if p.Byte != 42 {
		t.Errorf("Byte = %d; want 42", p.Byte)
	}
}

func TestUnknownPosition(t *testing.T) {
	p := UnknownPosition()
	if p.IsKnown() {
		t.Error("UnknownPosition should not be known")
	}
	if p.HasByte() {
		t.Error("UnknownPosition should not carry a byte offset")
	}
}

func TestPosition_IsKnown(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"zero value is origin, known", Position{}, true},
		{"unknown position", UnknownPosition(), false},
		{"origin with byte", Position{Line: 0, Column: 0, Byte: 0}, true},
		{"known position mid-file", Position{Line: 5, Column: 10, Byte: -1}, true},
		{"negative line only", Position{Line: -1, Column: 3, Byte: -1}, false},
		{"negative column only", Position{Line: 3, Column: -1, Byte: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsKnown(); got != tt.want {
				t.Errorf("IsKnown() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPosition_HasByte(t *testing.T) {
	if (Position{Line: 0, Column: 0, Byte: -1}).HasByte() {
		t.Error("HasByte() should be false when Byte is -1")
	}
	if !(Position{Line: 0, Column: 0, Byte: 0}).HasByte() {
		t.Error("HasByte() should be true when Byte >= 0")
	}
	if (Position{Line: -1, Column: -1, Byte: 0}).HasByte() {
		t.Error("HasByte() should be false for an unknown position regardless of Byte")
	}
}

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"unknown", UnknownPosition(), "<unknown>"},
		{"origin displays 1-based", NewPosition(0, 0, 0), "1:1"},
		{"mid file", NewPosition(9, 4, 100), "10:5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestPosition_BeforeAfter(t *testing.T) {
	a := NewPosition(1, 0, -1)
	b := NewPosition(1, 5, -1)
	c := NewPosition(2, 0, -1)

	if !a.Before(b) {
		t.Error("a should be before b (same line, smaller column)")
	}
	if !b.Before(c) {
		t.Error("b should be before c (smaller line)")
	}
	if c.Before(a) {
		t.Error("c should not be before a")
	}
	if !c.After(a) {
		t.Error("c should be after a")
	}
	if UnknownPosition().Before(a) {
		t.Error("unknown positions are never ordered")
	}
}
