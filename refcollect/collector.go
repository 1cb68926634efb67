package refcollect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sysml-tools/semcore/adapter"
	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/resolve"
	"github.com/sysml-tools/semcore/symtab"
)

// RelationHook is invoked for every relationship-kind occurrence (a
// Relations entry or a FeatureType, as opposed to an alias target) that
// resolves successfully during a Collect pass: relType identifies which
// relgraph sub-graph the adapter filed the edge under, source and target
// are the two already-populated symbols, and span is the textual
// occurrence's location. The workspace uses this to run relationship
// validators in the same pass that resolves targets, since that is the
// only point with the correct lexical scope to resolve an unqualified
// target name.
type RelationHook func(relType relgraph.Type, source, target *symtab.Symbol, span location.Span)

// Collector replays an adapter's populate walk over the same file,
// resolving every textual relationship target, feature type, and alias
// target it finds against the already-populated table and recording each
// successful resolution as a reference on the target symbol.
//
// A Collector must be driven with the same kind table the adapter used to
// populate the file: it re-derives the original scope nesting (including
// the namespace sibling rule and anonymous-element naming) from that table
// plus the AST, and a mismatched kind table would walk it differently.
type Collector struct {
	table        *symtab.SymbolTable
	kinds        map[string]adapter.KindSpec
	file         location.SourceID
	qnStack      []string
	anonSeq      map[symtab.ScopeID]int
	relationHook RelationHook
}

// New creates a Collector over table using kinds to categorize each
// element the same way the originating adapter did.
func New(table *symtab.SymbolTable, kinds map[string]adapter.KindSpec) *Collector {
	return &Collector{table: table, kinds: kinds, anonSeq: make(map[symtab.ScopeID]int)}
}

// OnRelation registers hook to be called for every relationship-kind
// occurrence this Collector resolves. Replaces any previously registered
// hook. Passing nil disables the hook.
func (c *Collector) OnRelation(hook RelationHook) {
	c.relationHook = hook
}

// Collect resolves every textual reference in syntax against table,
// tagging successful resolutions with file as the occurrence site.
func (c *Collector) Collect(file location.SourceID, syntax astx.SyntaxFile) {
	c.file = file
	c.anonSeq = make(map[symtab.ScopeID]int)

	namespaceEntered := false
	var namespaceName string
	if syntax.HasNamespace() {
		ns := syntax.Namespace
		namespaceName = ns.Name
		if sym, ok := c.currentScope().Symbol(ns.Name); ok && sym.HasOwnScope {
			c.table.EnterExistingScope(sym.OwnScope)
			c.qnStack = append(c.qnStack, sym.QualifiedName)
			namespaceEntered = true
		}
	}

	for _, el := range syntax.Elements {
		if namespaceEntered && c.isPackage(el) && el.Name == namespaceName {
			c.walkAll(el.Children)
			continue
		}
		c.visit(el)
	}

	if namespaceEntered {
		c.table.ExitScope()
		c.qnStack = c.qnStack[:len(c.qnStack)-1]
	}
}

func (c *Collector) currentScope() *symtab.Scope {
	return c.table.Scope(c.table.CurrentScope())
}

func (c *Collector) isPackage(el astx.Element) bool {
	spec, ok := c.kinds[el.Kind]
	return ok && spec.Category == adapter.CategoryPackage
}

func (c *Collector) walkAll(elements []astx.Element) {
	for _, el := range elements {
		c.visit(el)
	}
}

func (c *Collector) visit(el astx.Element) {
	spec, ok := c.kinds[el.Kind]
	if !ok {
		return
	}

	switch spec.Category {
	case adapter.CategoryPackage, adapter.CategoryClassifier, adapter.CategoryDefinition, adapter.CategoryUsage:
		c.visitScoped(el)
	case adapter.CategoryFeature:
		c.visitScoped(el)
	case adapter.CategoryAlias:
		c.resolveAlias(el)
	case adapter.CategoryImport, adapter.CategoryInert:
		// Imports carry no textual reference to an in-table symbol beyond
		// the import path itself, which symtab already resolves eagerly
		// for wildcard visibility; comments and annotations have none.
	}
}

// visitScoped handles every element kind that owns a scope (Package,
// Classifier, Feature, Definition, Usage): resolve its own relation
// references, then descend into the previously-created scope to visit
// children with the same lexical context the adapter used.
func (c *Collector) visitScoped(el astx.Element) {
	sym, ok := c.currentScope().Symbol(c.localName(el))
	if !ok {
		// The adapter rejected this element as a duplicate and never
		// inserted it (or never entered its scope); nothing to resolve or
		// descend into.
		return
	}

	spec := c.kinds[el.Kind]
	c.resolveRelations(el, sym)

	// Domain-specific usage kinds (SatisfyRequirement, PerformAction,
	// ExhibitState, IncludeUseCase) additionally target their declared
	// type as a named relationship edge, mirroring
	// adapter.Walker.dispatchDefinitionOrUsage.
	if spec.Category == adapter.CategoryUsage && spec.UsageRelation != "" && el.FeatureType != nil {
		c.resolveTypedRef(spec.UsageRelation, sym, el.FeatureType.Name, el.FeatureType.Span)
	}

	if !sym.HasOwnScope {
		return
	}
	c.table.EnterExistingScope(sym.OwnScope)
	c.qnStack = append(c.qnStack, sym.QualifiedName)
	c.walkAll(el.Children)
	c.table.ExitScope()
	c.qnStack = c.qnStack[:len(c.qnStack)-1]
}

func (c *Collector) resolveRelations(el astx.Element, source *symtab.Symbol) {
	for _, rel := range el.Relations {
		c.resolveTypedRef(relgraph.Type(rel.RelationKind), source, rel.Name, rel.Span)
	}
	if el.FeatureType != nil {
		c.resolveTypedRef(relgraph.Typing, source, el.FeatureType.Name, el.FeatureType.Span)
	}
}

func (c *Collector) resolveAlias(el astx.Element) {
	if el.AliasTarget != nil {
		c.resolveRef(el.AliasTarget.Name, el.AliasTarget.Span)
	}
}

// resolveRef resolves name against the table's current scope chain and, on
// success, appends (c.file, span) to the resolved symbol's references.
// Used for occurrences (alias targets) that are not relgraph edges and so
// never invoke the relation hook.
func (c *Collector) resolveRef(name string, span location.Span) {
	if name == "" {
		return
	}
	sym, ok := resolve.Resolve(c.table, name)
	if !ok {
		return
	}
	c.table.AddReference(sym.QualifiedName, c.file, span)
}

// resolveTypedRef resolves a relationship-kind occurrence (a Relations
// entry or a FeatureType): a relgraph edge source and textual target. On
// success it records the reference and, if a hook is registered, reports
// the resolved edge for validation.
func (c *Collector) resolveTypedRef(relType relgraph.Type, source *symtab.Symbol, name string, span location.Span) {
	if name == "" {
		return
	}
	target, ok := resolve.Resolve(c.table, name)
	if !ok {
		return
	}
	c.table.AddReference(target.QualifiedName, c.file, span)
	if c.relationHook != nil {
		c.relationHook(relType, source, target, span)
	}
}

// localName mirrors adapter.Walker.localName exactly: the same element,
// visited in the same traversal order against the same kind table,
// produces the same declared-or-synthesized name the adapter used to
// insert it, so the collector can find it again in the now-populated
// scope.
func (c *Collector) localName(el astx.Element) string {
	if el.Name != "" {
		return el.Name
	}
	return c.synthesizeAnon(strings.ToLower(el.Kind))
}

func (c *Collector) synthesizeAnon(tag string) string {
	scope := c.table.CurrentScope()
	c.anonSeq[scope]++
	return fmt.Sprintf("$%s#%s", tag, strconv.Itoa(c.anonSeq[scope]))
}
