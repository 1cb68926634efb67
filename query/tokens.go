package query

import (
	"sort"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// TokenKind is a semantic-token classification, per spec.md §6's minimum
// "Namespace, Type, Property, Variable" set.
type TokenKind uint8

const (
	TokenNamespace TokenKind = iota
	TokenType
	TokenProperty
	TokenVariable
)

// String returns a human-readable label.
func (k TokenKind) String() string {
	switch k {
	case TokenNamespace:
		return "Namespace"
	case TokenType:
		return "Type"
	case TokenProperty:
		return "Property"
	default:
		return "Variable"
	}
}

// Token is one classified identifier occurrence.
type Token struct {
	Span location.Span
	Kind TokenKind
}

// SemanticTokens classifies every declaration and resolved reference in
// file, in source order, per spec.md §4.9: a symbol's own variant
// (Package, Classifier, Definition, Usage, Feature) determines its default
// classification; for a reference occurrence, the relationship type that
// produced it — when it is a property-reference relationship
// (redefinition, subsetting and its variants) or a type-reference
// relationship (specialization, typing, satisfy, perform, exhibit,
// include, assert, verify) — overrides that default.
func SemanticTokens(table *symtab.SymbolTable, graph *relgraph.Graph, file location.SourceID) []Token {
	decls := Declarations(table, file)

	relKindAt := make(map[location.Span]TokenKind)
	for _, rel := range relgraph.AllTypes() {
		kind, ok := relationshipTokenKind(rel)
		if !ok {
			continue
		}
		for _, sym := range decls {
			// Typing is the one relationship type the graph stores
			// one-to-one (spec.md §3); every other token is one-to-many.
			if rel == relgraph.Typing {
				if edge, ok := graph.GetTargetEdge(rel, sym.QualifiedName); ok && edge.File == file {
					relKindAt[edge.Span] = kind
				}
				continue
			}
			for _, edge := range graph.GetTargetEdges(rel, sym.QualifiedName) {
				if edge.File == file {
					relKindAt[edge.Span] = kind
				}
			}
		}
	}

	var tokens []Token
	for _, sym := range decls {
		tokens = append(tokens, Token{Span: sym.DeclarationSpan, Kind: symbolTokenKind(sym.Kind)})
	}
	for _, ref := range References(table, file) {
		kind, ok := relKindAt[ref.Span]
		if !ok {
			kind = symbolTokenKind(ref.Target.Kind)
		}
		tokens = append(tokens, Token{Span: ref.Span, Kind: kind})
	}

	sort.Slice(tokens, func(i, j int) bool { return location.Compare(tokens[i].Span, tokens[j].Span) < 0 })
	return tokens
}

func relationshipTokenKind(rel relgraph.Type) (TokenKind, bool) {
	switch rel {
	case relgraph.Redefinition, relgraph.Subsetting, relgraph.ReferenceSubsetting, relgraph.CrossSubsetting:
		return TokenProperty, true
	case relgraph.Specialization, relgraph.Typing, relgraph.Satisfy, relgraph.Perform,
		relgraph.Exhibit, relgraph.Include, relgraph.Assert, relgraph.Verify:
		return TokenType, true
	default:
		return 0, false
	}
}

func symbolTokenKind(kind symtab.Kind) TokenKind {
	switch kind {
	case symtab.Package:
		return TokenNamespace
	case symtab.Classifier, symtab.Definition:
		return TokenType
	default:
		return TokenVariable
	}
}
