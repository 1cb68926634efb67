package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/resolve"
	"github.com/sysml-tools/semcore/symtab"
)

// PopulateError wraps the batch of diagnostics an adapter accumulated
// while walking a file. Population never fails catastrophically: a
// PopulateError means the file was walked to completion and every
// non-conflicting declaration was still registered.
type PopulateError struct {
	Result diag.Result
}

func (e *PopulateError) Error() string {
	return fmt.Sprintf("adapter: %d diagnostic(s) during population", e.Result.Len())
}

// Walker walks a SyntaxFile's elements, inserting symbols into table and
// edges into relGraph. One Walker instance owns exactly one populate call:
// its error accumulator and current-namespace stack are not reused across
// files, matching the "borrows the shared tables, releases them when
// populate returns" ownership rule of spec.md §5.
type Walker struct {
	table     *symtab.SymbolTable
	relGraph  *relgraph.Graph
	kinds     map[string]KindSpec
	collector *diag.Collector
	file      location.SourceID
	qnStack   []string
	anonSeq   map[symtab.ScopeID]int
}

// NewWalker creates a Walker over table and relGraph using kinds to
// normalize this dialect's raw grammar Kind strings. Dialect adapters call
// this with their own kind table merged over the shared one.
func NewWalker(table *symtab.SymbolTable, relGraph *relgraph.Graph, kinds map[string]KindSpec) *Walker {
	return &Walker{
		table:     table,
		relGraph:  relGraph,
		kinds:     kinds,
		collector: diag.NewCollector(diag.NoLimit),
		anonSeq:   make(map[symtab.ScopeID]int),
	}
}

// Populate walks file: entering its namespace if declared, dispatching
// every top-level element, and returning *PopulateError only if the
// accumulator is non-empty.
func (w *Walker) Populate(file location.SourceID, syntax astx.SyntaxFile) error {
	w.file = file
	w.table.SetCurrentFile(file)

	namespaceEntered := false
	var namespaceName string
	if syntax.HasNamespace() {
		ns := syntax.Namespace
		namespaceName = ns.Name
		sym := &symtab.Symbol{
			Kind:            symtab.Package,
			Name:            ns.Name,
			QualifiedName:   w.qualify(ns.Name),
			DeclarationSpan: ns.Span,
		}
		if err := w.table.Insert(ns.Name, sym); err != nil {
			w.collectDuplicate(ns.Name, ns.Span)
		} else {
			scope := w.table.EnterScope()
			sym.OwnScope, sym.HasOwnScope = scope, true
			w.qnStack = append(w.qnStack, sym.QualifiedName)
			namespaceEntered = true
		}
	}

	for _, el := range syntax.Elements {
		if namespaceEntered && w.isPackage(el) && el.Name == namespaceName {
			// The file namespace's own package element: its children are
			// siblings of the namespace, not re-nested under a second scope.
			w.walkAll(el.Children)
			continue
		}
		w.dispatch(el)
	}

	if namespaceEntered {
		w.table.ExitScope()
		w.qnStack = w.qnStack[:len(w.qnStack)-1]
	}

	if w.collector.Len() > 0 {
		return &PopulateError{Result: w.collector.Result()}
	}
	return nil
}

func (w *Walker) isPackage(el astx.Element) bool {
	spec, ok := w.kinds[el.Kind]
	return ok && spec.Category == CategoryPackage
}

func (w *Walker) walkAll(elements []astx.Element) {
	for _, el := range elements {
		w.dispatch(el)
	}
}

func (w *Walker) dispatch(el astx.Element) {
	spec, ok := w.kinds[el.Kind]
	if !ok {
		// An unrecognized production from the external parser's grammar.
		// Not a population failure: the element simply contributes
		// nothing to the semantic model.
		return
	}

	switch spec.Category {
	case CategoryPackage:
		w.dispatchPackage(el)
	case CategoryClassifier:
		w.dispatchClassifier(el, spec)
	case CategoryFeature:
		w.dispatchFeature(el)
	case CategoryDefinition:
		w.dispatchDefinitionOrUsage(el, spec, symtab.Definition)
	case CategoryUsage:
		w.dispatchDefinitionOrUsage(el, spec, symtab.Usage)
	case CategoryAlias:
		w.dispatchAlias(el)
	case CategoryImport:
		w.dispatchImport(el)
	case CategoryInert:
		// Comments and annotations: no symbol, no scope, no recursion.
	}
}

func (w *Walker) dispatchPackage(el astx.Element) {
	sym := &symtab.Symbol{
		Kind:            symtab.Package,
		Name:            el.Name,
		QualifiedName:   w.qualify(w.localName(el)),
		DeclarationSpan: el.Span,
	}
	if err := w.insert(w.localName(el), sym, el.NameSpanOrSpan()); err != nil {
		return
	}
	w.enterOwnScope(sym)
	w.walkAll(el.Children)
	w.exitOwnScope()
}

func (w *Walker) dispatchClassifier(el astx.Element, spec KindSpec) {
	sym := &symtab.Symbol{
		Kind:            symtab.Classifier,
		Name:            el.Name,
		QualifiedName:   w.qualify(w.localName(el)),
		DeclarationSpan: el.Span,
		ClassifierKind:  spec.NormalizedKind,
		IsAbstract:      el.IsAbstract,
	}
	if err := w.insert(w.localName(el), sym, el.NameSpanOrSpan()); err != nil {
		return
	}
	w.emitRelations(el, sym.QualifiedName)
	w.enterOwnScope(sym)
	w.walkAll(el.Children)
	w.exitOwnScope()
}

func (w *Walker) dispatchFeature(el astx.Element) {
	sym := &symtab.Symbol{
		Kind:            symtab.Feature,
		Name:            el.Name,
		QualifiedName:   w.qualify(w.localName(el)),
		DeclarationSpan: el.Span,
	}
	if el.FeatureType != nil {
		sym.FeatureType = el.FeatureType.Name
	}
	if err := w.insert(w.localName(el), sym, el.NameSpanOrSpan()); err != nil {
		return
	}
	w.emitRelations(el, sym.QualifiedName)
	w.enterOwnScope(sym)
	w.walkAll(el.Children)
	w.exitOwnScope()
}

func (w *Walker) dispatchDefinitionOrUsage(el astx.Element, spec KindSpec, kind symtab.Kind) {
	sym := &symtab.Symbol{
		Kind:            kind,
		Name:            el.Name,
		QualifiedName:   w.qualify(w.localName(el)),
		DeclarationSpan: el.Span,
		NormalizedKind:  spec.NormalizedKind,
		Role:            spec.Role,
	}
	if kind == symtab.Usage && el.FeatureType != nil {
		sym.UsageType = el.FeatureType.Name
		sym.UsageTypeSpan = el.FeatureType.Span
	}
	if err := w.insert(w.localName(el), sym, el.NameSpanOrSpan()); err != nil {
		return
	}
	w.emitRelations(el, sym.QualifiedName)

	// Domain-specific usage kinds (SatisfyRequirement, PerformAction,
	// ExhibitState, IncludeUseCase) emit both the Usage symbol above and
	// their named relationship edge, using the declared type reference as
	// the edge's textual target.
	if kind == symtab.Usage && spec.UsageRelation != "" && el.FeatureType != nil {
		w.relGraph.AddOneToMany(spec.UsageRelation, sym.QualifiedName, el.FeatureType.Name, el.FeatureType.Span, w.file)
	}

	w.enterOwnScope(sym)
	w.walkAll(el.Children)
	w.exitOwnScope()
}

func (w *Walker) dispatchAlias(el astx.Element) {
	sym := &symtab.Symbol{
		Kind:            symtab.Alias,
		Name:            el.Name,
		QualifiedName:   w.qualify(w.localName(el)),
		DeclarationSpan: el.Span,
	}
	if el.AliasTarget != nil {
		sym.AliasTarget = el.AliasTarget.Name
		sym.AliasTargetSpan = el.AliasTarget.Span
	}
	w.insert(w.localName(el), sym, el.NameSpanOrSpan())
}

func (w *Walker) dispatchImport(el astx.Element) {
	sym := &symtab.Symbol{
		Kind:              symtab.Import,
		Name:              el.Name,
		QualifiedName:     w.qualify(w.localName(el)),
		DeclarationSpan:   el.Span,
		ImportPath:        el.ImportPath,
		ImportIsRecursive: el.ImportIsRecursive,
		ImportIsWildcard:  el.ImportIsWildcard || resolve.IsWildcard(el.ImportPath) || resolve.IsRecursiveWildcard(el.ImportPath),
	}
	name := w.localName(el)
	if name == "" {
		name = w.synthesizeAnon("import")
		sym.QualifiedName = w.qualify(name)
	}
	if err := w.table.AddImport(name, sym); err != nil {
		w.collectDuplicate(name, el.NameSpanOrSpan())
	}
}

// emitRelations emits one-to-many edges for every relation el declares
// (specialization, redefinition, subsetting, satisfy, perform, exhibit,
// include, assert, verify) and a one-to-one typing edge if el.FeatureType
// is set, all sourced from src.
func (w *Walker) emitRelations(el astx.Element, src string) {
	for _, rel := range el.Relations {
		t := relgraph.Type(rel.RelationKind)
		if t == relgraph.Typing {
			w.relGraph.AddOneToOne(t, src, rel.Name, rel.Span, w.file)
			continue
		}
		w.relGraph.AddOneToMany(t, src, rel.Name, rel.Span, w.file)
	}
	if el.FeatureType != nil {
		w.relGraph.AddOneToOne(relgraph.Typing, src, el.FeatureType.Name, el.FeatureType.Span, w.file)
	}
}

// localName returns el.Name, or a synthesized anonymous local name scoped
// to the current scope if el is anonymous (e.g. a bare `satisfy R1;`
// usage with no declared name).
func (w *Walker) localName(el astx.Element) string {
	if el.Name != "" {
		return el.Name
	}
	return w.synthesizeAnon(strings.ToLower(el.Kind))
}

func (w *Walker) synthesizeAnon(tag string) string {
	scope := w.table.CurrentScope()
	w.anonSeq[scope]++
	return fmt.Sprintf("$%s#%s", tag, strconv.Itoa(w.anonSeq[scope]))
}

func (w *Walker) insert(name string, sym *symtab.Symbol, span location.Span) error {
	if err := w.table.Insert(name, sym); err != nil {
		w.collectDuplicate(name, span)
		return err
	}
	return nil
}

func (w *Walker) collectDuplicate(name string, span location.Span) {
	issue := diag.NewIssue(diag.Error, diag.CodeDuplicateDefinition,
		fmt.Sprintf("%q is already defined in this scope", name)).
		WithSpan(span).
		WithDetail(diag.DetailKeySymbolName, name).
		Build()
	w.collector.Collect(issue)
}

func (w *Walker) enterOwnScope(sym *symtab.Symbol) {
	scope := w.table.EnterScope()
	sym.OwnScope, sym.HasOwnScope = scope, true
	w.qnStack = append(w.qnStack, sym.QualifiedName)
}

func (w *Walker) exitOwnScope() {
	w.table.ExitScope()
	w.qnStack = w.qnStack[:len(w.qnStack)-1]
}

func (w *Walker) qualify(name string) string {
	if len(w.qnStack) == 0 {
		return name
	}
	return resolve.Join(w.qnStack[len(w.qnStack)-1], name)
}
