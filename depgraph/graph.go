package depgraph

import (
	"slices"
	"sort"

	"github.com/sysml-tools/semcore/location"
)

// Graph holds the reverse import index (to -> from) plus the forward
// index (from -> to) needed to compute it, following the data model's
// `to_path -> [from_path]` plus `from_path -> [to_path]` shape.
type Graph struct {
	// dependsOn[from] is the set of files `from` imports.
	dependsOn map[location.SourceID][]location.SourceID
	// dependents[to] is the set of files that import `to`.
	dependents map[location.SourceID][]location.SourceID
}

// New creates an empty dependency graph.
func New() *Graph {
	return &Graph{
		dependsOn:  make(map[location.SourceID][]location.SourceID),
		dependents: make(map[location.SourceID][]location.SourceID),
	}
}

// AddEdge records that `from` imports `to`. Idempotent: adding the same
// edge twice has no additional effect.
func (g *Graph) AddEdge(from, to location.SourceID) {
	if !slices.Contains(g.dependsOn[from], to) {
		g.dependsOn[from] = append(g.dependsOn[from], to)
	}
	if !slices.Contains(g.dependents[to], from) {
		g.dependents[to] = append(g.dependents[to], from)
	}
}

// DependentsOf returns every file that imports path: the files that must
// be re-populated if path changes.
func (g *Graph) DependentsOf(path location.SourceID) []location.SourceID {
	return slices.Clone(g.dependents[path])
}

// DependenciesOf returns every file that path imports.
func (g *Graph) DependenciesOf(path location.SourceID) []location.SourceID {
	return slices.Clone(g.dependsOn[path])
}

// RemoveFile deletes every edge where path appears as either endpoint.
func (g *Graph) RemoveFile(path location.SourceID) {
	for _, to := range g.dependsOn[path] {
		g.dependents[to] = removeOne(g.dependents[to], path)
	}
	delete(g.dependsOn, path)

	for _, from := range g.dependents[path] {
		g.dependsOn[from] = removeOne(g.dependsOn[from], path)
	}
	delete(g.dependents, path)
}

func removeOne(list []location.SourceID, value location.SourceID) []location.SourceID {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// TopologicalOrder orders files so that every file appears after the files
// it depends on (importees before importers), restricted to the given
// file set. Files that participate in an import cycle are ordered
// arbitrarily but deterministically relative to one another (lexical by
// path string), rather than the relationship graph refusing to proceed —
// population tolerates out-of-order edges since targets resolve in a
// separate pass. Files not present in files are ignored even if they
// appear as dependency edges (e.g. a stdlib file not yet loaded).
func (g *Graph) TopologicalOrder(files []location.SourceID) []location.SourceID {
	set := make(map[location.SourceID]bool, len(files))
	for _, f := range files {
		set[f] = true
	}

	// Kahn's algorithm over in-degree restricted to `set`, breaking ties by
	// path string for determinism.
	indegree := make(map[location.SourceID]int, len(files))
	for _, f := range files {
		indegree[f] = 0
	}
	for _, f := range files {
		for _, dep := range g.dependsOn[f] {
			if set[dep] {
				indegree[f]++
			}
		}
	}

	remaining := slices.Clone(files)
	var order []location.SourceID
	for len(remaining) > 0 {
		var ready []location.SourceID
		for _, f := range remaining {
			if indegree[f] == 0 {
				ready = append(ready, f)
			}
		}
		if len(ready) == 0 {
			// Cycle: break it by picking the lexically smallest remaining
			// file so ordering stays deterministic.
			sort.Slice(remaining, func(i, j int) bool {
				return remaining[i].String() < remaining[j].String()
			})
			ready = []location.SourceID{remaining[0]}
		}
		sort.Slice(ready, func(i, j int) bool { return ready[i].String() < ready[j].String() })

		picked := ready[0]
		order = append(order, picked)
		remaining = removeOne(remaining, picked)
		delete(indegree, picked)
		for _, f := range remaining {
			for _, dep := range g.dependsOn[f] {
				if dep == picked {
					indegree[f]--
				}
			}
		}
	}
	return order
}
