package astx

import "testing"

func TestNewSyntaxFile(t *testing.T) {
	ns := &NamespaceDecl{Name: "Pkg"}
	elements := []Element{{Kind: "PartDefinition", Name: "Pump"}}

	f := NewSyntaxFile(SysML, ns, elements)

	if !f.IsSysML() || f.IsKerML() {
		t.Error("file constructed with SysML should report IsSysML() and not IsKerML()")
	}
	if !f.HasNamespace() {
		t.Error("file constructed with a namespace should report HasNamespace()")
	}
	if len(f.Elements) != 1 || f.Elements[0].Name != "Pump" {
		t.Errorf("Elements = %v; want one element named Pump", f.Elements)
	}
}

func TestSyntaxFile_NoNamespace(t *testing.T) {
	f := NewSyntaxFile(KerML, nil, nil)

	if f.HasNamespace() {
		t.Error("file constructed without a namespace should report !HasNamespace()")
	}
	if !f.IsKerML() || f.IsSysML() {
		t.Error("file constructed with KerML should report IsKerML() and not IsSysML()")
	}
}
