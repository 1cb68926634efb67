package validate

import (
	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// sysmlValidator enforces the target-kind table from spec.md §4.6 for the
// four domain-specific sysml relationships: satisfy, perform, exhibit,
// include. Every other relationship type is accepted unconditionally.
type sysmlValidator struct{}

func (sysmlValidator) ValidateRelationship(relType relgraph.Type, source, target *symtab.Symbol) (diag.Issue, bool) {
	switch relType {
	case relgraph.Satisfy:
		if !isUsageOrDefinitionWithRole(target, symtab.RoleRequirement) {
			return invalidTypeIssue(diag.CodeInvalidRelationshipType, relType, source, target, "Requirement")
		}
	case relgraph.Perform:
		if !isUsageOrDefinitionWithRole(target, symtab.RoleAction) {
			return invalidTypeIssue(diag.CodeInvalidRelationshipType, relType, source, target, "Action")
		}
	case relgraph.Exhibit:
		if !isUsageOrDefinitionWithRole(target, symtab.RoleState) {
			return invalidTypeIssue(diag.CodeInvalidRelationshipType, relType, source, target, "State")
		}
	case relgraph.Include:
		if !isUsageOrDefinitionWithRole(target, symtab.RoleUseCase) {
			return invalidTypeIssue(diag.CodeInvalidRelationshipType, relType, source, target, "UseCase")
		}
	}
	return diag.Issue{}, false
}

// isUsageOrDefinitionWithRole reports whether sym is a Definition or Usage
// symbol whose normalized kind carries the given semantic role, e.g. a
// `requirement def`/`requirement usage` both carry RoleRequirement.
func isUsageOrDefinitionWithRole(sym *symtab.Symbol, role symtab.SemanticRole) bool {
	if sym.Kind != symtab.Definition && sym.Kind != symtab.Usage {
		return false
	}
	return sym.Role == role
}
