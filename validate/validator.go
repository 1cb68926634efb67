package validate

import (
	"fmt"

	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// Validator checks one relationship edge's resolved target symbol against
// the kind the relationship type requires.
type Validator interface {
	// ValidateRelationship reports a diagnostic issue if target is not a
	// valid target for relType from source. Returns the zero Issue and
	// false when the edge is valid.
	ValidateRelationship(relType relgraph.Type, source, target *symtab.Symbol) (diag.Issue, bool)
}

// New returns the validator for the given file extension ("sysml" or
// "kerml"), or the no-op validator for any other extension.
func New(extension string) Validator {
	switch extension {
	case "sysml":
		return sysmlValidator{}
	case "kerml":
		return kermlValidator{}
	default:
		return noopValidator{}
	}
}

// noopValidator accepts every edge. Used for unrecognized file extensions,
// per spec.md §4.6's "factory selects by file extension ... unknown
// extensions get the no-op."
type noopValidator struct{}

func (noopValidator) ValidateRelationship(relgraph.Type, *symtab.Symbol, *symtab.Symbol) (diag.Issue, bool) {
	return diag.Issue{}, false
}

// invalidTypeIssue builds the standard "target is the wrong kind" issue
// used by both dialect validators, naming the target's actual kind per
// spec.md §4.6: "Violations produce an InvalidType semantic error naming
// the target's actual kind."
func invalidTypeIssue(code diag.Code, relType relgraph.Type, source, target *symtab.Symbol, expected string) (diag.Issue, bool) {
	got := actualKindLabel(target)
	msg := fmt.Sprintf("%q relationship from %q requires a %s target, got %s %q",
		relType, source.QualifiedName, expected, got, target.QualifiedName)
	issue := diag.NewIssue(diag.Error, code, msg).
		WithSpan(target.DeclarationSpan).
		WithDetails(diag.SymbolRelationship(source.QualifiedName, string(relType))...).
		WithExpectedGot(expected, got).
		Build()
	return issue, true
}

// actualKindLabel renders a symbol's kind for an InvalidType diagnostic.
// Definitions and Usages use their normalized kind (e.g. "Part",
// "UseCase"), Classifiers their ClassifierKind; every other variant, or
// one whose kind string is empty, uses its Kind's own label.
func actualKindLabel(sym *symtab.Symbol) string {
	switch sym.Kind {
	case symtab.Definition, symtab.Usage:
		if sym.NormalizedKind != "" {
			return sym.NormalizedKind
		}
	case symtab.Classifier:
		if sym.ClassifierKind != "" {
			return sym.ClassifierKind
		}
	}
	return sym.Kind.String()
}
