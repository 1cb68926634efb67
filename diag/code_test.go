package diag

import "testing"

func TestAllCodes_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range AllCodes() {
		if seen[c.String()] {
			t.Errorf("duplicate code value %q", c.String())
		}
		seen[c.String()] = true
	}
}

func TestCode_IsZero(t *testing.T) {
	if !(Code{}).IsZero() {
		t.Error("zero-value Code should report IsZero")
	}
	if CodeDuplicateDefinition.IsZero() {
		t.Error("a defined code should not report IsZero")
	}
}

func TestCodesByCategory(t *testing.T) {
	semantic := CodesByCategory(CategorySemantic)
	if len(semantic) != 13 {
		t.Errorf("CategorySemantic has %d codes; want 13 (E001-E013)", len(semantic))
	}
	parse := CodesByCategory(CategoryParse)
	if len(parse) != 3 {
		t.Errorf("CategoryParse has %d codes; want 3 (P001-P003)", len(parse))
	}
	io := CodesByCategory(CategoryIO)
	if len(io) != 2 {
		t.Errorf("CategoryIO has %d codes; want 2 (IO001-IO002)", len(io))
	}
}

func TestCode_String(t *testing.T) {
	if got, want := CodeDuplicateDefinition.String(), "E001"; got != want {
		t.Errorf("CodeDuplicateDefinition.String() = %q; want %q", got, want)
	}
	if got, want := CodeFileNotFound.String(), "IO001"; got != want {
		t.Errorf("CodeFileNotFound.String() = %q; want %q", got, want)
	}
}
