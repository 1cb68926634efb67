// Package kerml implements the syntax adapter for the KerML kernel
// dialect: population of its classifiers and features, including the
// structural relationships (specialization, redefinition, subsetting,
// typing, reference_subsetting, cross_subsetting) declared on them.
package kerml

import (
	"github.com/sysml-tools/semcore/adapter"
	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/symtab"
)

// Adapter populates a symbol table and relationship graph from a single
// KerML SyntaxFile. Create one Adapter per populate call.
type Adapter struct {
	walker *adapter.Walker
}

// New creates a KerML adapter over table and relGraph.
func New(table *symtab.SymbolTable, relGraph *relgraph.Graph) *Adapter {
	return &Adapter{walker: adapter.NewWalker(table, relGraph, kinds)}
}

// Populate walks file, which must have been parsed as KerML, inserting
// symbols and edges. Returns *adapter.PopulateError if any diagnostics
// accumulated; population still completes best-effort in that case.
func (a *Adapter) Populate(file location.SourceID, syntax astx.SyntaxFile) error {
	return a.walker.Populate(file, syntax)
}

// Kinds returns the kind table this adapter populates with, so a second
// pass (the reference collector) can replay the same categorization.
func Kinds() map[string]adapter.KindSpec {
	return kinds
}
