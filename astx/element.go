package astx

import "github.com/sysml-tools/semcore/location"

// TypeRef is a textual, as-written reference from one element to another,
// tagged with the relationship-type token it will become once resolved.
// RelationKind values come from the relationship graph's closed set:
// specialization, redefinition, subsetting, typing, reference_subsetting,
// cross_subsetting, satisfy, perform, exhibit, include, assert, verify.
type TypeRef struct {
	RelationKind string
	Name         string
	Span         location.Span
}

// NamespaceDecl is a file-level namespace (package) declaration.
type NamespaceDecl struct {
	Name string
	Span location.Span
}

// Element is one node of a parsed file's syntax tree, generic across
// dialects. An adapter walks a file's top-level Elements (and their
// Children) to populate the symbol table and relationship graph; astx
// itself carries no dialect-specific grammar knowledge.
type Element struct {
	// Kind is the dialect-specific grammar production this element came
	// from, e.g. "PartDefinition", "Classifier", "FeatureMembership". The
	// adapter maps Kind to a normalized Symbol variant and semantic role.
	Kind string

	// Name is the declared simple name, or "" for anonymous elements.
	Name string

	// Span covers the whole declaration; NameSpan covers just the
	// identifier, for hover/rename/go-to-definition.
	Span     location.Span
	NameSpan location.Span

	// IsAbstract marks classifier- or definition-kind elements declared
	// abstract.
	IsAbstract bool

	// FeatureType is the single type reference for a Feature or Usage
	// element (the "typing" relation), if declared.
	FeatureType *TypeRef

	// Relations holds every other outgoing relationship reference this
	// element declares as written: specialization, redefinition,
	// subsetting, satisfy, perform, exhibit, include, assert, verify.
	Relations []TypeRef

	// AliasTarget is set for Alias elements: the qualified name the alias
	// resolves to.
	AliasTarget *TypeRef

	// ImportPath, ImportIsRecursive, and ImportIsWildcard are set for
	// Import elements.
	ImportPath        string
	ImportIsRecursive bool
	ImportIsWildcard  bool

	// Children are nested elements: feature members, nested definitions,
	// usages.
	Children []Element
}

// RelationsOfKind returns the subset of Relations tagged with the given
// relation kind, in declaration order.
func (e Element) RelationsOfKind(kind string) []TypeRef {
	var out []TypeRef
	for _, rel := range e.Relations {
		if rel.RelationKind == kind {
			out = append(out, rel)
		}
	}
	return out
}

// IsImport reports whether this element is an import declaration.
func (e Element) IsImport() bool {
	return e.ImportPath != ""
}

// IsAlias reports whether this element is an alias declaration.
func (e Element) IsAlias() bool {
	return e.AliasTarget != nil
}

// NameSpanOrSpan returns NameSpan if it is set, falling back to the whole
// declaration Span. Diagnostics about a declared name (e.g. a duplicate
// definition) prefer pointing at just the identifier when available.
func (e Element) NameSpanOrSpan() location.Span {
	if !e.NameSpan.IsZero() {
		return e.NameSpan
	}
	return e.Span
}
