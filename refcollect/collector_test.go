package refcollect

import (
	"testing"

	"github.com/sysml-tools/semcore/adapter"
	"github.com/sysml-tools/semcore/adapter/kerml"
	"github.com/sysml-tools/semcore/adapter/sysml"
	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

func sid(name string) location.SourceID {
	return location.NewSyntheticSourceID("test://" + name)
}

var sysmlKinds = adapter.Merge(map[string]adapter.KindSpec{
	"PartDefinition": {Category: adapter.CategoryDefinition, NormalizedKind: "Part"},
	"PartUsage":      {Category: adapter.CategoryUsage, NormalizedKind: "Part"},
	"RequirementDefinition": {
		Category: adapter.CategoryDefinition, NormalizedKind: "Requirement", Role: symtab.RoleRequirement,
	},
	"SatisfyUsage": {
		Category: adapter.CategoryUsage, NormalizedKind: "SatisfyRequirement", UsageRelation: relgraph.Satisfy,
	},
})

func TestCollectorResolvesClassifierSpecialization(t *testing.T) {
	tab := symtab.New()
	rg := relgraph.New()

	file := astx.SyntaxFile{
		Dialect: astx.KerML,
		Elements: []astx.Element{
			{Kind: "Classifier", Name: "Animal"},
			{
				Kind: "Classifier", Name: "Dog",
				Relations: []astx.TypeRef{
					{RelationKind: "specialization", Name: "Animal", Span: location.Point(sid("k.kerml"), 2, 20)},
				},
			},
		},
	}

	if err := kerml.New(tab, rg).Populate(sid("k.kerml"), file); err != nil {
		t.Fatalf("populate: %v", err)
	}

	New(tab, kermlKinds(t)).Collect(sid("k.kerml"), file)

	animal, ok := tab.LookupQualified("Animal")
	if !ok {
		t.Fatalf("Animal not found")
	}
	refs := animal.References()
	if len(refs) != 1 {
		t.Fatalf("Animal references = %v, want 1", refs)
	}
	if refs[0].File != sid("k.kerml") {
		t.Fatalf("reference file = %v", refs[0].File)
	}
}

// kermlKinds rebuilds the categorization the kerml package's unexported
// kind table uses for the productions these tests exercise: the collector
// needs a kind table that categorizes each element the same way the
// adapter that populated it did.
func kermlKinds(t *testing.T) map[string]adapter.KindSpec {
	t.Helper()
	return adapter.Merge(map[string]adapter.KindSpec{
		"Classifier": {Category: adapter.CategoryClassifier, NormalizedKind: "classifier"},
		"Feature":    {Category: adapter.CategoryFeature},
	})
}

func TestCollectorResolvesFeatureTyping(t *testing.T) {
	tab := symtab.New()
	rg := relgraph.New()

	file := astx.SyntaxFile{
		Dialect: astx.KerML,
		Elements: []astx.Element{
			{Kind: "Classifier", Name: "Engine"},
			{
				Kind: "Classifier", Name: "Car",
				Children: []astx.Element{
					{Kind: "Feature", Name: "engine", FeatureType: &astx.TypeRef{Name: "Engine", Span: location.Point(sid("c.kerml"), 3, 10)}},
				},
			},
		},
	}

	if err := kerml.New(tab, rg).Populate(sid("c.kerml"), file); err != nil {
		t.Fatalf("populate: %v", err)
	}

	New(tab, kermlKinds(t)).Collect(sid("c.kerml"), file)

	engine, ok := tab.LookupQualified("Engine")
	if !ok || len(engine.References()) != 1 {
		t.Fatalf("Engine references = %+v, %v", engine, ok)
	}
}

func TestCollectorIgnoresUnresolvableReference(t *testing.T) {
	tab := symtab.New()
	rg := relgraph.New()

	file := astx.SyntaxFile{
		Dialect: astx.SysML,
		Elements: []astx.Element{
			{
				Kind: "PartDefinition", Name: "Widget",
				Relations: []astx.TypeRef{{RelationKind: "specialization", Name: "Nonexistent"}},
			},
		},
	}

	if err := sysml.New(tab, rg).Populate(sid("w.sysml"), file); err != nil {
		t.Fatalf("populate: %v", err)
	}

	// Must not panic even though "Nonexistent" never resolves.
	New(tab, sysmlKinds).Collect(sid("w.sysml"), file)

	widget, ok := tab.LookupQualified("Widget")
	if !ok || len(widget.References()) != 0 {
		t.Fatalf("Widget references = %+v", widget)
	}
}

func TestCollectorSkipsChildrenOfRejectedDuplicate(t *testing.T) {
	tab := symtab.New()
	rg := relgraph.New()

	file := astx.SyntaxFile{
		Dialect: astx.SysML,
		Elements: []astx.Element{
			{Kind: "PartDefinition", Name: "P"},
			{
				Kind: "PartDefinition", Name: "P",
				Children: []astx.Element{{Kind: "PartDefinition", Name: "Inner"}},
			},
		},
	}

	_ = sysml.New(tab, rg).Populate(sid("dup.sysml"), file)

	// Should not panic resolving the duplicate's orphaned children.
	New(tab, sysmlKinds).Collect(sid("dup.sysml"), file)

	if _, ok := tab.LookupQualified("P::Inner"); ok {
		t.Fatalf("P::Inner should never have been inserted")
	}
}
