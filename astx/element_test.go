package astx

import "testing"

func TestElement_RelationsOfKind(t *testing.T) {
	e := Element{
		Name: "Pump",
		Relations: []TypeRef{
			{RelationKind: "specialization", Name: "Component"},
			{RelationKind: "satisfy", Name: "ReqA"},
			{RelationKind: "satisfy", Name: "ReqB"},
		},
	}

	got := e.RelationsOfKind("satisfy")
	if len(got) != 2 || got[0].Name != "ReqA" || got[1].Name != "ReqB" {
		t.Errorf("RelationsOfKind(\"satisfy\") = %v; want [ReqA ReqB]", got)
	}

	if len(e.RelationsOfKind("perform")) != 0 {
		t.Error("RelationsOfKind(\"perform\") should be empty when no such relation exists")
	}
}

func TestElement_IsImport(t *testing.T) {
	importElem := Element{Kind: "Import", ImportPath: "Pkg::Sub"}
	if !importElem.IsImport() {
		t.Error("element with a non-empty ImportPath should report IsImport() == true")
	}

	other := Element{Kind: "PartDefinition", Name: "Pump"}
	if other.IsImport() {
		t.Error("a non-import element should report IsImport() == false")
	}
}

func TestElement_IsAlias(t *testing.T) {
	aliasElem := Element{Kind: "Alias", AliasTarget: &TypeRef{Name: "Pkg::Thing"}}
	if !aliasElem.IsAlias() {
		t.Error("element with an AliasTarget should report IsAlias() == true")
	}

	other := Element{Kind: "PartDefinition"}
	if other.IsAlias() {
		t.Error("an element without an AliasTarget should report IsAlias() == false")
	}
}
