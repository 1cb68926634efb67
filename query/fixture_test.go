package query

import (
	"testing"

	"github.com/sysml-tools/semcore/adapter/sysml"
	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/refcollect"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

func sid(name string) location.SourceID {
	return location.NewSyntheticSourceID("test://" + name)
}

// buildFixture populates one file with:
//
//	part def Engine { ... }                  (lines 0-2, top-level)
//	part def System { part engine1 : Engine } (lines 3-7, engine1 at lines 4-6)
//	// a trailing comment                     (lines 9-10)
//
// through the real sysml adapter and reference collector, so every query
// function under test runs against a genuinely populated symbol table and
// relationship graph rather than hand-built fixtures.
func buildFixture(t *testing.T) (*symtab.SymbolTable, *relgraph.Graph, astx.SyntaxFile, location.SourceID) {
	t.Helper()
	file := sid("engine.sysml")

	engineTypeSpan := location.Range(file, 4, 17, 4, 23)
	syntax := astx.SyntaxFile{
		Dialect: astx.SysML,
		Elements: []astx.Element{
			{
				Kind: "PartDefinition", Name: "Engine",
				Span: location.Range(file, 0, 0, 2, 1),
			},
			{
				Kind: "PartDefinition", Name: "System",
				Span: location.Range(file, 3, 0, 7, 1),
				Children: []astx.Element{
					{
						Kind: "PartUsage", Name: "engine1",
						Span:        location.Range(file, 4, 2, 6, 3),
						FeatureType: &astx.TypeRef{Name: "Engine", Span: engineTypeSpan},
					},
				},
			},
			{
				Kind: "Comment",
				Span: location.Range(file, 9, 0, 10, 40),
			},
		},
	}

	tab := symtab.New()
	rg := relgraph.New()
	if err := sysml.New(tab, rg).Populate(file, syntax); err != nil {
		t.Fatalf("populate: %v", err)
	}
	refcollect.New(tab, sysml.Kinds()).Collect(file, syntax)

	return tab, rg, syntax, file
}
