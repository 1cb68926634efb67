package sysml

import (
	"github.com/sysml-tools/semcore/adapter"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// definitionKind registers the Definition/Usage pair for one normalized
// kind, e.g. "Part" for "PartDefinition"/"PartUsage".
func definitionKind(raw, normalized string, role symtab.SemanticRole) map[string]adapter.KindSpec {
	return map[string]adapter.KindSpec{
		raw + "Definition": {Category: adapter.CategoryDefinition, NormalizedKind: normalized, Role: role},
		raw + "Usage":      {Category: adapter.CategoryUsage, NormalizedKind: normalized, Role: role},
	}
}

// kinds is the sysml dialect's raw-grammar-production kind table,
// normalizing every Definition/Usage production from spec.md §3 and §6,
// including the three synonym productions (Concern, Case, AnalysisCase)
// that collapse onto the UseCase normalized kind, and the four
// domain-specific usage-only relationship kinds.
var kinds = adapter.Merge(buildKinds())

func buildKinds() map[string]adapter.KindSpec {
	out := map[string]adapter.KindSpec{}
	add := func(m map[string]adapter.KindSpec) {
		for k, v := range m {
			out[k] = v
		}
	}

	add(definitionKind("Part", "Part", symtab.RoleOther))
	add(definitionKind("Port", "Port", symtab.RoleOther))
	add(definitionKind("Action", "Action", symtab.RoleAction))
	add(definitionKind("State", "State", symtab.RoleState))
	add(definitionKind("Item", "Item", symtab.RoleOther))
	add(definitionKind("Attribute", "Attribute", symtab.RoleOther))
	add(definitionKind("Requirement", "Requirement", symtab.RoleRequirement))
	add(definitionKind("UseCase", "UseCase", symtab.RoleUseCase))
	add(definitionKind("View", "View", symtab.RoleOther))
	add(definitionKind("Viewpoint", "Viewpoint", symtab.RoleOther))
	add(definitionKind("Rendering", "Rendering", symtab.RoleOther))
	add(definitionKind("VerificationCase", "VerificationCase", symtab.RoleOther))

	// Synonym productions that normalize onto UseCase.
	add(definitionKind("Concern", "UseCase", symtab.RoleUseCase))
	add(definitionKind("Case", "UseCase", symtab.RoleUseCase))
	add(definitionKind("AnalysisCase", "UseCase", symtab.RoleUseCase))

	// Domain-specific usage kinds: each additionally emits its named
	// relationship edge (adapter.Walker handles the edge emission once
	// UsageRelation is non-zero).
	out["SatisfyRequirementUsage"] = adapter.KindSpec{
		Category: adapter.CategoryUsage, NormalizedKind: "SatisfyRequirement",
		Role: symtab.RoleOther, UsageRelation: relgraph.Satisfy,
	}
	out["PerformActionUsage"] = adapter.KindSpec{
		Category: adapter.CategoryUsage, NormalizedKind: "PerformAction",
		Role: symtab.RoleOther, UsageRelation: relgraph.Perform,
	}
	out["ExhibitStateUsage"] = adapter.KindSpec{
		Category: adapter.CategoryUsage, NormalizedKind: "ExhibitState",
		Role: symtab.RoleOther, UsageRelation: relgraph.Exhibit,
	}
	out["IncludeUseCaseUsage"] = adapter.KindSpec{
		Category: adapter.CategoryUsage, NormalizedKind: "IncludeUseCase",
		Role: symtab.RoleOther, UsageRelation: relgraph.Include,
	}

	return out
}
