package validate

import "testing"

func TestNewSelectsByExtension(t *testing.T) {
	if _, ok := New("sysml").(sysmlValidator); !ok {
		t.Fatalf("New(sysml) = %T, want sysmlValidator", New("sysml"))
	}
	if _, ok := New("kerml").(kermlValidator); !ok {
		t.Fatalf("New(kerml) = %T, want kermlValidator", New("kerml"))
	}
	if _, ok := New("txt").(noopValidator); !ok {
		t.Fatalf("New(txt) = %T, want noopValidator", New("txt"))
	}
	if _, ok := New("").(noopValidator); !ok {
		t.Fatalf("New(\"\") = %T, want noopValidator", New(""))
	}
}
