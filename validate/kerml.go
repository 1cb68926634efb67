package validate

import (
	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// kermlValidator enforces the structural-relationship target-kind rules
// from spec.md §4.6: type-oriented relationships (specialization, typing)
// require a Classifier target; feature-oriented relationships
// (redefinition, subsetting and its reference/cross variants) require a
// Feature target.
type kermlValidator struct{}

func (kermlValidator) ValidateRelationship(relType relgraph.Type, source, target *symtab.Symbol) (diag.Issue, bool) {
	switch relType {
	case relgraph.Specialization:
		if target.Kind != symtab.Classifier {
			return invalidTypeIssue(diag.CodeInvalidSpecialization, relType, source, target, "Classifier")
		}
	case relgraph.Typing:
		if target.Kind != symtab.Classifier {
			return invalidTypeIssue(diag.CodeInvalidSpecialization, relType, source, target, "Classifier")
		}
	case relgraph.Redefinition:
		if target.Kind != symtab.Feature {
			return invalidTypeIssue(diag.CodeInvalidRedefinition, relType, source, target, "Feature")
		}
	case relgraph.Subsetting, relgraph.ReferenceSubsetting, relgraph.CrossSubsetting:
		if target.Kind != symtab.Feature {
			return invalidTypeIssue(diag.CodeInvalidSubsetting, relType, source, target, "Feature")
		}
	}
	return diag.Issue{}, false
}
