package symtab

import (
	"slices"

	"github.com/sysml-tools/semcore/location"
)

// Kind discriminates the tagged Symbol variants.
type Kind uint8

const (
	Package Kind = iota
	Classifier
	Feature
	Definition
	Usage
	Alias
	Import
)

// String returns a human-readable label for the kind.
func (k Kind) String() string {
	switch k {
	case Package:
		return "Package"
	case Classifier:
		return "Classifier"
	case Feature:
		return "Feature"
	case Definition:
		return "Definition"
	case Usage:
		return "Usage"
	case Alias:
		return "Alias"
	case Import:
		return "Import"
	default:
		return "unknown"
	}
}

// SemanticRole is a compact, language-neutral role derived from a
// Definition's or Usage's normalized kind, used by consumers (query
// services, semantic tokens) that do not need the full kind table.
type SemanticRole uint8

const (
	RoleOther SemanticRole = iota
	RoleRequirement
	RoleAction
	RoleState
	RoleUseCase
)

// String returns a human-readable label for the role.
func (r SemanticRole) String() string {
	switch r {
	case RoleRequirement:
		return "Requirement"
	case RoleAction:
		return "Action"
	case RoleState:
		return "State"
	case RoleUseCase:
		return "UseCase"
	default:
		return "Other"
	}
}

// Reference is a textual occurrence of a symbol's name, bound during the
// reference-collection pass.
type Reference struct {
	File location.SourceID
	Span location.Span
}

// Symbol is the tagged union of every declarable entity: package,
// classifier, feature, definition, usage, alias, or import. Every variant
// carries the common fields (Name, QualifiedName, ScopeID, SourceFile,
// DeclarationSpan, References); variant-specific fields are zero-valued
// when not applicable to Kind.
type Symbol struct {
	Kind            Kind
	Name            string
	QualifiedName   string
	ScopeID         ScopeID
	SourceFile      location.SourceID
	DeclarationSpan location.Span

	// OwnScope is the scope this symbol introduces (Package, Classifier,
	// Definition, Usage all open a body scope per the populate protocol).
	OwnScope    ScopeID
	HasOwnScope bool

	// Classifier-only.
	ClassifierKind string
	IsAbstract     bool

	// Feature-only.
	FeatureType string

	// Definition/Usage-only. NormalizedKind is the closed-set normalized
	// name (Part, Port, Action, ... UseCase); SemanticRole is derived from
	// it. UsageType and UsageTypeSpan additionally apply only to Usage:
	// the as-written type reference's name and span, kept so a query
	// service can find which target symbol it resolved to without
	// re-walking the AST in the declaration's lexical scope.
	NormalizedKind string
	Role           SemanticRole
	UsageType      string
	UsageTypeSpan  location.Span

	// Alias-only.
	AliasTarget     string
	AliasTargetSpan location.Span

	// Import-only.
	ImportPath        string
	ImportIsRecursive bool
	ImportIsWildcard  bool

	references []Reference
}

// AddReference appends a reference occurrence. Duplicate (file, span)
// entries are permitted and never deduplicated here; the reference
// collector is responsible for not invoking this twice for the same site.
func (s *Symbol) AddReference(ref Reference) {
	s.references = append(s.references, ref)
}

// References returns a defensive copy of every recorded reference.
func (s *Symbol) References() []Reference {
	return slices.Clone(s.references)
}
