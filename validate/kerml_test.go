package validate

import (
	"testing"

	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

func classifierSymbol(name string) *symtab.Symbol {
	return &symtab.Symbol{Kind: symtab.Classifier, QualifiedName: name, ClassifierKind: "classifier"}
}

func featureSymbol(name string) *symtab.Symbol {
	return &symtab.Symbol{Kind: symtab.Feature, QualifiedName: name}
}

func TestKermlSpecializationRequiresClassifier(t *testing.T) {
	v := kermlValidator{}
	if _, ok := v.ValidateRelationship(relgraph.Specialization, classifierSymbol("Dog"), classifierSymbol("Animal")); ok {
		t.Fatalf("expected specialization->Classifier to be valid")
	}
	issue, ok := v.ValidateRelationship(relgraph.Specialization, classifierSymbol("Dog"), featureSymbol("x"))
	if !ok {
		t.Fatalf("expected specialization->Feature to be invalid")
	}
	if issue.Code() != diag.CodeInvalidSpecialization {
		t.Fatalf("code = %v, want %v", issue.Code(), diag.CodeInvalidSpecialization)
	}
}

func TestKermlTypingRequiresClassifier(t *testing.T) {
	v := kermlValidator{}
	if _, ok := v.ValidateRelationship(relgraph.Typing, featureSymbol("engine"), classifierSymbol("Engine")); ok {
		t.Fatalf("expected typing->Classifier to be valid")
	}
	if _, ok := v.ValidateRelationship(relgraph.Typing, featureSymbol("engine"), featureSymbol("x")); !ok {
		t.Fatalf("expected typing->Feature to be invalid")
	}
}

func TestKermlRedefinitionRequiresFeature(t *testing.T) {
	v := kermlValidator{}
	if _, ok := v.ValidateRelationship(relgraph.Redefinition, featureSymbol("a"), featureSymbol("b")); ok {
		t.Fatalf("expected redefinition->Feature to be valid")
	}
	issue, ok := v.ValidateRelationship(relgraph.Redefinition, featureSymbol("a"), classifierSymbol("X"))
	if !ok {
		t.Fatalf("expected redefinition->Classifier to be invalid")
	}
	if issue.Code() != diag.CodeInvalidRedefinition {
		t.Fatalf("code = %v, want %v", issue.Code(), diag.CodeInvalidRedefinition)
	}
}

func TestKermlSubsettingVariantsRequireFeature(t *testing.T) {
	v := kermlValidator{}
	for _, rel := range []relgraph.Type{relgraph.Subsetting, relgraph.ReferenceSubsetting, relgraph.CrossSubsetting} {
		if _, ok := v.ValidateRelationship(rel, featureSymbol("a"), featureSymbol("b")); ok {
			t.Fatalf("%s: expected ->Feature to be valid", rel)
		}
		issue, ok := v.ValidateRelationship(rel, featureSymbol("a"), classifierSymbol("X"))
		if !ok {
			t.Fatalf("%s: expected ->Classifier to be invalid", rel)
		}
		if issue.Code() != diag.CodeInvalidSubsetting {
			t.Fatalf("%s: code = %v, want %v", rel, issue.Code(), diag.CodeInvalidSubsetting)
		}
	}
}

func TestKermlIgnoresUnrelatedRelationshipTypes(t *testing.T) {
	v := kermlValidator{}
	if _, ok := v.ValidateRelationship(relgraph.Satisfy, featureSymbol("a"), classifierSymbol("X")); ok {
		t.Fatalf("kerml validator should not opine on satisfy")
	}
}
