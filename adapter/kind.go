package adapter

import (
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// Category discriminates how an element's raw grammar Kind dispatches
// during population, independent of the dialect that produced it.
type Category uint8

const (
	// CategoryPackage: a scope-naming package or namespace declaration.
	CategoryPackage Category = iota
	// CategoryClassifier: a kerml-side type declaration.
	CategoryClassifier
	// CategoryFeature: a typed member of a classifier.
	CategoryFeature
	// CategoryDefinition: a sysml-side definition.
	CategoryDefinition
	// CategoryUsage: a sysml-side usage.
	CategoryUsage
	// CategoryAlias: a name alias.
	CategoryAlias
	// CategoryImport: an import declaration.
	CategoryImport
	// CategoryInert: comments and annotations — recorded by query services
	// directly from the AST, contributing no symbol or scope here.
	CategoryInert
)

// KindSpec describes how one raw grammar-production Kind string
// normalizes: its dispatch Category, its closed-set NormalizedKind (for
// Definition/Usage/Classifier), the SemanticRole consumers derive from it,
// and — for the four domain-specific usage kinds — the relationship type
// its declaration implicitly targets.
type KindSpec struct {
	Category       Category
	NormalizedKind string
	Role           symtab.SemanticRole
	UsageRelation  relgraph.Type // zero value ("") for ordinary kinds
}

// sharedKinds holds the dialect-independent productions both adapters
// recognize: packages/namespaces, comments, annotations, imports, and
// aliases. Dialect kind tables are overlaid on top of this base.
var sharedKinds = map[string]KindSpec{
	"Package":    {Category: CategoryPackage},
	"Namespace":  {Category: CategoryPackage},
	"Comment":    {Category: CategoryInert},
	"Annotation": {Category: CategoryInert},
	"Import":     {Category: CategoryImport},
	"Alias":      {Category: CategoryAlias},
}

// Merge returns a new kind table combining the dialect-independent base
// table (packages, comments, annotations, imports, aliases) with a
// dialect's own overlay. Overlay wins on key collision.
func Merge(overlay map[string]KindSpec) map[string]KindSpec {
	out := make(map[string]KindSpec, len(sharedKinds)+len(overlay))
	for k, v := range sharedKinds {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
