package workspace

import (
	"errors"
	"sort"
	"strings"

	"github.com/sysml-tools/semcore/adapter"
	"github.com/sysml-tools/semcore/adapter/kerml"
	"github.com/sysml-tools/semcore/adapter/sysml"
	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/depgraph"
	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/refcollect"
	"github.com/sysml-tools/semcore/relgraph"
	"github.com/sysml-tools/semcore/resolve"
	"github.com/sysml-tools/semcore/symtab"
	"github.com/sysml-tools/semcore/validate"
)

// WorkspaceFile is one file tracked by a Workspace: its parsed content,
// a monotonically increasing version, and whether that content has been
// walked by populate_file yet.
type WorkspaceFile struct {
	Path      location.SourceID
	Content   astx.SyntaxFile
	Version   uint32
	Populated bool
}

// Workspace owns the symbol table, relationship graph, and dependency
// graph for a project, plus the file-lifecycle operations that keep them
// in sync with source content. A Workspace must be mutated by only one
// caller at a time (spec.md §5); it performs no internal locking.
type Workspace struct {
	files         map[location.SourceID]*WorkspaceFile
	symbols       *symtab.SymbolTable
	relationships *relgraph.Graph
	dependencies  *depgraph.Graph
	stdlibLoaded  bool
	subscribers   []Subscriber

	// diagnostics holds the issues produced the last time each file was
	// populated, keyed by the same path so re-population replaces rather
	// than accumulates them.
	diagnostics map[location.SourceID][]diag.Issue
}

// New creates an empty workspace.
func New() *Workspace {
	return &Workspace{
		files:         make(map[location.SourceID]*WorkspaceFile),
		symbols:       symtab.New(),
		relationships: relgraph.New(),
		dependencies:  depgraph.New(),
		diagnostics:   make(map[location.SourceID][]diag.Issue),
	}
}

// Symbols returns the workspace's symbol table, for read-only query
// access (spec.md §5: "query services take shared, read-only access").
func (w *Workspace) Symbols() *symtab.SymbolTable { return w.symbols }

// Relationships returns the workspace's relationship graph.
func (w *Workspace) Relationships() *relgraph.Graph { return w.relationships }

// Dependencies returns the workspace's dependency graph.
func (w *Workspace) Dependencies() *depgraph.Graph { return w.dependencies }

// File returns the tracked WorkspaceFile for path, if any.
func (w *Workspace) File(path location.SourceID) (*WorkspaceFile, bool) {
	wf, ok := w.files[path]
	return wf, ok
}

// ValidateExtension reports an error if path's extension is neither
// "sysml" nor "kerml", per spec.md §6's supported-extensions contract.
func ValidateExtension(path location.SourceID) error {
	switch extensionOf(path) {
	case "sysml", "kerml":
		return nil
	default:
		return errUnsupportedExtension(path)
	}
}

func extensionOf(path location.SourceID) string {
	name := path.String()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// AddFile adds or replaces the content tracked for path. An existing entry
// is marked unpopulated and its version incremented; a new entry starts at
// version 1. Emits FileAdded for a new path, FileUpdated for an existing
// one.
func (w *Workspace) AddFile(path location.SourceID, content astx.SyntaxFile) error {
	if err := ValidateExtension(path); err != nil {
		return err
	}

	wf, exists := w.files[path]
	if !exists {
		w.files[path] = &WorkspaceFile{Path: path, Content: content, Version: 1}
		w.emit(Event{Kind: FileAdded, File: path})
		return nil
	}

	wf.Content = content
	wf.Version++
	wf.Populated = false
	w.emit(Event{Kind: FileUpdated, File: path})
	return nil
}

// RemoveFile purges every symbol, relationship edge, and dependency edge
// tagged with path, then drops the WorkspaceFile record. Returns an error
// if path is not tracked.
func (w *Workspace) RemoveFile(path location.SourceID) error {
	if _, ok := w.files[path]; !ok {
		return errFileNotFound(path)
	}
	w.purgeContributions(path)
	delete(w.files, path)
	delete(w.diagnostics, path)
	w.emit(Event{Kind: FileRemoved, File: path})
	return nil
}

// purgeContributions removes every symbol, relationship edge, and
// dependency edge tagged with path, without touching the WorkspaceFile
// record itself. Used both by RemoveFile and, internally, by PopulateFile
// re-populating an already-populated file.
func (w *Workspace) purgeContributions(path location.SourceID) {
	w.symbols.RemoveFile(path)
	w.relationships.RemoveFile(path)
	w.dependencies.RemoveFile(path)
}

// PopulateFile runs path's dialect adapter, then the reference collector,
// then the relationship validators for every edge the file contributed,
// against the shared symbol table, relationship graph, and dependency
// graph. If path was already populated, its prior contributions are
// purged first (without deleting the WorkspaceFile record), per spec.md
// §4.7's re-population contract. Returns an error only for conditions the
// walk cannot recover from; semantic diagnostics accumulate in
// Diagnostics and never abort population.
func (w *Workspace) PopulateFile(path location.SourceID) error {
	wf, ok := w.files[path]
	if !ok {
		return errFileNotFound(path)
	}

	if wf.Populated {
		w.purgeContributions(path)
	}

	extension := extensionOf(path)
	validator := validate.New(extension)

	var issues []diag.Issue

	if err := w.runAdapter(path, wf.Content, &issues); err != nil {
		return err
	}

	kinds, err := kindsFor(wf.Content.Dialect)
	if err != nil {
		return err
	}
	collector := refcollect.New(w.symbols, kinds)
	collector.OnRelation(func(relType relgraph.Type, source, target *symtab.Symbol, span location.Span) {
		if issue, bad := validator.ValidateRelationship(relType, source, target); bad {
			issues = append(issues, issue)
		}
	})
	collector.Collect(path, wf.Content)

	w.indexDependencies(path)
	w.emitPopulationEvents(path)

	w.diagnostics[path] = issues
	wf.Populated = true
	w.emit(Event{Kind: FileChanged, File: path})
	return nil
}

func (w *Workspace) runAdapter(path location.SourceID, content astx.SyntaxFile, issues *[]diag.Issue) error {
	var a interface {
		Populate(location.SourceID, astx.SyntaxFile) error
	}
	switch content.Dialect {
	case astx.SysML:
		a = sysml.New(w.symbols, w.relationships)
	case astx.KerML:
		a = kerml.New(w.symbols, w.relationships)
	default:
		return errUnsupportedExtension(path)
	}

	err := a.Populate(path, content)
	if err == nil {
		return nil
	}
	var popErr *adapter.PopulateError
	if errors.As(err, &popErr) {
		*issues = append(*issues, popErr.Result.IssuesSlice()...)
		return nil
	}
	return err
}

func kindsFor(dialect astx.Dialect) (map[string]adapter.KindSpec, error) {
	switch dialect {
	case astx.SysML:
		return sysml.Kinds(), nil
	case astx.KerML:
		return kerml.Kinds(), nil
	default:
		return nil, errors.New("workspace: unrecognized dialect")
	}
}

// indexDependencies walks path's Import symbols and records a dependency
// edge to the file that declares each import's resolved target namespace,
// emitting DependencyAdded and ImportAdded. Imports that do not yet
// resolve (e.g. an unloaded stdlib) contribute no edge; the dependency
// graph tolerates partial knowledge, per spec.md §5.
func (w *Workspace) indexDependencies(path location.SourceID) {
	for _, sym := range w.importsOf(path) {
		w.emit(Event{
			Kind:             ImportAdded,
			File:             path,
			ImportPath:       sym.ImportPath,
			ImportIsWildcard: sym.ImportIsWildcard,
		})

		target, ok := resolve.Resolve(w.symbols, resolve.Base(sym.ImportPath))
		if !ok || target.SourceFile.IsZero() || target.SourceFile == path {
			continue
		}
		w.dependencies.AddEdge(path, target.SourceFile)
		w.emit(Event{Kind: DependencyAdded, DependencyFrom: path, DependencyTo: target.SourceFile})
	}
}

func (w *Workspace) importsOf(path location.SourceID) []*symtab.Symbol {
	var out []*symtab.Symbol
	for _, sym := range w.symbols.AllSymbols() {
		if sym.SourceFile == path && sym.Kind == symtab.Import {
			out = append(out, sym)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return location.Compare(out[i].DeclarationSpan, out[j].DeclarationSpan) < 0
	})
	return out
}

// emitPopulationEvents reports every symbol this population contributed
// as a SymbolInserted event, ordered by declaration span for a
// deterministic (if not strictly insertion-order, since the adapter
// exposes no such hook) delivery sequence.
func (w *Workspace) emitPopulationEvents(path location.SourceID) {
	var inserted []*symtab.Symbol
	for _, sym := range w.symbols.AllSymbols() {
		if sym.SourceFile == path {
			inserted = append(inserted, sym)
		}
	}
	sort.Slice(inserted, func(i, j int) bool {
		return location.Compare(inserted[i].DeclarationSpan, inserted[j].DeclarationSpan) < 0
	})
	for _, sym := range inserted {
		w.emit(Event{Kind: SymbolInserted, File: path, Symbol: sym})
	}
}

// PopulateAll populates every tracked file in dependency-topological
// order: importees before importers, per spec.md §4.7.
//
// The dependency graph otherwise only gains an edge once an import has
// already resolved (indexDependencies, called from PopulateFile itself),
// which on a cold workspace is circular: resolving file A's import of
// file B requires B to already be populated. seedDependencyGraph breaks
// that circularity by recording every import's target syntactically,
// from each file's as-written AST, before any adapter runs — so the very
// first PopulateAll already orders importees before importers instead of
// falling back to the lexical tiebreak.
func (w *Workspace) PopulateAll() error {
	w.seedDependencyGraph()

	paths := make([]location.SourceID, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	for _, p := range w.dependencies.TopologicalOrder(paths) {
		if err := w.PopulateFile(p); err != nil {
			return err
		}
	}
	return nil
}

// seedDependencyGraph records a syntactic dependency edge for every import
// in every tracked file, using resolve.ExtractImports (spec.md §4.3's C6
// operation) against each file's raw astx.SyntaxFile plus the namespace
// each file declares at its top level — no symbol table lookup, and so no
// dependency on population order.
func (w *Workspace) seedDependencyGraph() {
	paths := make([]location.SourceID, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i].String() < paths[j].String() })

	owners := make(map[string]location.SourceID)
	for _, p := range paths {
		for _, name := range declaredNamespaces(w.files[p].Content) {
			if _, taken := owners[name]; !taken {
				owners[name] = p
			}
		}
	}

	for _, p := range paths {
		for _, importPath := range resolve.ExtractImports(w.files[p].Content) {
			components := resolve.Parse(resolve.Base(importPath))
			if len(components) == 0 {
				continue
			}
			owner, ok := owners[components[0]]
			if !ok || owner == p {
				continue
			}
			w.dependencies.AddEdge(p, owner)
		}
	}
}

// declaredNamespaces returns the names file declares at its top level:
// its file-level namespace, if any, plus every top-level package/namespace
// element's name. Only top-level declarations are considered — the same
// granularity the populate protocol (spec.md §4.4) treats as a file's
// importable namespaces.
func declaredNamespaces(file astx.SyntaxFile) []string {
	var names []string
	if file.Namespace != nil && file.Namespace.Name != "" {
		names = append(names, file.Namespace.Name)
	}
	kinds, err := kindsFor(file.Dialect)
	if err != nil {
		return names
	}
	for _, el := range file.Elements {
		if spec, ok := kinds[el.Kind]; ok && spec.Category == adapter.CategoryPackage && el.Name != "" {
			names = append(names, el.Name)
		}
	}
	return names
}

// DependentsOf returns every file that must be re-populated if path
// changes, per the dependency graph.
func (w *Workspace) DependentsOf(path location.SourceID) []location.SourceID {
	return w.dependencies.DependentsOf(path)
}

// HasStdlib reports whether the standard library has been loaded.
func (w *Workspace) HasStdlib() bool { return w.stdlibLoaded }

// MarkStdlibLoaded records that the standard library has been loaded.
// Idempotent.
func (w *Workspace) MarkStdlibLoaded() { w.stdlibLoaded = true }

// Diagnostics aggregates every file's most recent population diagnostics
// into a single sorted Result.
func (w *Workspace) Diagnostics() diag.Result {
	collector := diag.NewCollector(diag.NoLimit)
	for _, issues := range w.diagnostics {
		collector.CollectAll(issues)
	}
	return collector.Result()
}

// DiagnosticsFor returns only the diagnostics from path's most recent
// population.
func (w *Workspace) DiagnosticsFor(path location.SourceID) []diag.Issue {
	return w.diagnostics[path]
}
