package relgraph

import (
	"slices"
	"sort"

	"github.com/sysml-tools/semcore/location"
)

// Edge carries an optional span pointing at the textual occurrence of the
// target reference, plus the file that contributed the edge so the
// workspace can remove precisely this file's edges during re-population.
type Edge struct {
	Target string
	Span   location.Span
	File   location.SourceID
}

// oneToManySub is source -> ordered list of target edges, plus an inverse
// index from target to sources for O(1) GetSources.
type oneToManySub struct {
	forward map[string][]Edge
	inverse map[string][]string
}

func newOneToManySub() *oneToManySub {
	return &oneToManySub{forward: make(map[string][]Edge), inverse: make(map[string][]string)}
}

// oneToOneSub is source -> single target edge; a second write overwrites.
type oneToOneSub struct {
	forward map[string]Edge
}

func newOneToOneSub() *oneToOneSub {
	return &oneToOneSub{forward: make(map[string]Edge)}
}

// symmetricSub holds undirected pairs with bidirectional adjacency.
type symmetricSub struct {
	adjacency map[string][]string
}

func newSymmetricSub() *symmetricSub {
	return &symmetricSub{adjacency: make(map[string][]string)}
}

// Graph is the set of named sub-graphs indexed by relationship-type token.
// Each sub-graph is created lazily on first write.
type Graph struct {
	oneToMany map[Type]*oneToManySub
	oneToOne  map[Type]*oneToOneSub
	symmetric map[Type]*symmetricSub
}

// New creates an empty relationship graph.
func New() *Graph {
	return &Graph{
		oneToMany: make(map[Type]*oneToManySub),
		oneToOne:  make(map[Type]*oneToOneSub),
		symmetric: make(map[Type]*symmetricSub),
	}
}

// AddOneToMany adds an edge src -> tgt under rel. Multiple targets may be
// added for the same source; order of addition is preserved.
func (g *Graph) AddOneToMany(rel Type, src, tgt string, span location.Span, file location.SourceID) {
	sub, ok := g.oneToMany[rel]
	if !ok {
		sub = newOneToManySub()
		g.oneToMany[rel] = sub
	}
	sub.forward[src] = append(sub.forward[src], Edge{Target: tgt, Span: span, File: file})
	sub.inverse[tgt] = append(sub.inverse[tgt], src)
}

// GetTargets returns the targets of src under rel, in addition order.
func (g *Graph) GetTargets(rel Type, src string) []string {
	sub, ok := g.oneToMany[rel]
	if !ok {
		return nil
	}
	edges := sub.forward[src]
	if len(edges) == 0 {
		return nil
	}
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.Target
	}
	return out
}

// GetTargetEdges returns the target edges of src under rel, including
// spans and origin files, in addition order.
func (g *Graph) GetTargetEdges(rel Type, src string) []Edge {
	sub, ok := g.oneToMany[rel]
	if !ok {
		return nil
	}
	return slices.Clone(sub.forward[src])
}

// GetSources returns every source with an edge to tgt under rel, via the
// maintained inverse index.
func (g *Graph) GetSources(rel Type, tgt string) []string {
	sub, ok := g.oneToMany[rel]
	if !ok {
		return nil
	}
	return slices.Clone(sub.inverse[tgt])
}

// HasPath reports whether tgt is transitively reachable from src by
// following rel edges, via BFS over the forward adjacency. Terminates via
// visited-set tracking even if the sub-graph contains cycles.
func (g *Graph) HasPath(rel Type, src, tgt string) bool {
	sub, ok := g.oneToMany[rel]
	if !ok {
		return false
	}
	if src == tgt {
		// has_transitive_path(rel, x, x) is false unless a self-edge exists.
		for _, e := range sub.forward[src] {
			if e.Target == tgt {
				return true
			}
		}
		return false
	}
	visited := map[string]bool{src: true}
	queue := []string{src}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range sub.forward[cur] {
			if e.Target == tgt {
				return true
			}
			if !visited[e.Target] {
				visited[e.Target] = true
				queue = append(queue, e.Target)
			}
		}
	}
	return false
}

// AddOneToOne sets src -> tgt under rel. A second call for the same src
// overwrites the first.
func (g *Graph) AddOneToOne(rel Type, src, tgt string, span location.Span, file location.SourceID) {
	sub, ok := g.oneToOne[rel]
	if !ok {
		sub = newOneToOneSub()
		g.oneToOne[rel] = sub
	}
	sub.forward[src] = Edge{Target: tgt, Span: span, File: file}
}

// GetTarget returns the single target of src under rel, if set.
func (g *Graph) GetTarget(rel Type, src string) (string, bool) {
	sub, ok := g.oneToOne[rel]
	if !ok {
		return "", false
	}
	e, ok := sub.forward[src]
	if !ok {
		return "", false
	}
	return e.Target, true
}

// GetTargetEdge returns the single target edge of src under rel, if set.
func (g *Graph) GetTargetEdge(rel Type, src string) (Edge, bool) {
	sub, ok := g.oneToOne[rel]
	if !ok {
		return Edge{}, false
	}
	e, ok := sub.forward[src]
	return e, ok
}

// AddSymmetric inserts a<->b under rel: both a->b and b->a.
func (g *Graph) AddSymmetric(rel Type, a, b string) {
	sub, ok := g.symmetric[rel]
	if !ok {
		sub = newSymmetricSub()
		g.symmetric[rel] = sub
	}
	if !slices.Contains(sub.adjacency[a], b) {
		sub.adjacency[a] = append(sub.adjacency[a], b)
	}
	if !slices.Contains(sub.adjacency[b], a) {
		sub.adjacency[b] = append(sub.adjacency[b], a)
	}
}

// GetRelated returns every node symmetrically related to x under rel.
func (g *Graph) GetRelated(rel Type, x string) []string {
	sub, ok := g.symmetric[rel]
	if !ok {
		return nil
	}
	return slices.Clone(sub.adjacency[x])
}

// RelationshipTypes returns the sorted, unique set of relationship types
// that currently have at least one edge in any sub-graph.
func (g *Graph) RelationshipTypes() []Type {
	seen := make(map[Type]bool)
	for t := range g.oneToMany {
		seen[t] = true
	}
	for t := range g.oneToOne {
		seen[t] = true
	}
	for t := range g.symmetric {
		seen[t] = true
	}
	out := make([]Type, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RemoveFile deletes every edge originating from file, across every
// sub-graph and shape. Inverse indices and symmetric adjacency lists are
// kept consistent.
func (g *Graph) RemoveFile(file location.SourceID) {
	for _, sub := range g.oneToMany {
		removeFileOneToMany(sub, file)
	}
	for _, sub := range g.oneToOne {
		for src, e := range sub.forward {
			if e.File == file {
				delete(sub.forward, src)
			}
		}
	}
	// Symmetric edges carry no per-edge file provenance in this model
	// (AddSymmetric takes no file argument); nothing to remove here. Any
	// caller needing file-scoped symmetric removal should track it
	// separately, since no SPEC_FULL.md relationship currently populates
	// the symmetric sub-graph.
}

func removeFileOneToMany(sub *oneToManySub, file location.SourceID) {
	for src, edges := range sub.forward {
		kept := edges[:0]
		for _, e := range edges {
			if e.File == file {
				sub.inverse[e.Target] = removeOne(sub.inverse[e.Target], src)
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == 0 {
			delete(sub.forward, src)
		} else {
			sub.forward[src] = kept
		}
	}
}

func removeOne(list []string, value string) []string {
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

// Equal reports whether g and other have the same edges in every
// sub-graph, ignoring adjacency-list ordering (per spec.md §4.2's equality
// contract) but respecting per-target multiplicity.
func (g *Graph) Equal(other *Graph) bool {
	if g == nil || other == nil {
		return g == other
	}
	return oneToManyEqual(g.oneToMany, other.oneToMany) &&
		oneToOneEqual(g.oneToOne, other.oneToOne) &&
		symmetricEqual(g.symmetric, other.symmetric)
}

// Snapshot renders the graph into plain, comparable data: every adjacency
// list sorted so two snapshots can be diffed with go-cmp's
// cmpopts.SortSlices without the comparison itself re-deriving the sort,
// per spec.md §8's "populate_all is idempotent ... equality modulo
// ordering" property.
type Snapshot struct {
	OneToMany map[Type]map[string][]string
	OneToOne  map[Type]map[string]string
	Symmetric map[Type]map[string][]string
}

// Snapshot returns a Snapshot of g.
func (g *Graph) Snapshot() Snapshot {
	snap := Snapshot{
		OneToMany: make(map[Type]map[string][]string, len(g.oneToMany)),
		OneToOne:  make(map[Type]map[string]string, len(g.oneToOne)),
		Symmetric: make(map[Type]map[string][]string, len(g.symmetric)),
	}
	for t, sub := range g.oneToMany {
		targets := make(map[string][]string, len(sub.forward))
		for src, edges := range sub.forward {
			ts := make([]string, len(edges))
			for i, e := range edges {
				ts[i] = e.Target
			}
			sort.Strings(ts)
			targets[src] = ts
		}
		snap.OneToMany[t] = targets
	}
	for t, sub := range g.oneToOne {
		targets := make(map[string]string, len(sub.forward))
		for src, e := range sub.forward {
			targets[src] = e.Target
		}
		snap.OneToOne[t] = targets
	}
	for t, sub := range g.symmetric {
		adj := make(map[string][]string, len(sub.adjacency))
		for node, related := range sub.adjacency {
			rs := slices.Clone(related)
			sort.Strings(rs)
			adj[node] = rs
		}
		snap.Symmetric[t] = adj
	}
	return snap
}

func oneToManyEqual(a, b map[Type]*oneToManySub) bool {
	if len(a) != len(b) {
		return false
	}
	for t, subA := range a {
		subB, ok := b[t]
		if !ok || len(subA.forward) != len(subB.forward) {
			return false
		}
		for src, edgesA := range subA.forward {
			edgesB, ok := subB.forward[src]
			if !ok || !sameTargetMultiset(edgesA, edgesB) {
				return false
			}
		}
	}
	return true
}

func sameTargetMultiset(a, b []Edge) bool {
	if len(a) != len(b) {
		return false
	}
	ta := make([]string, len(a))
	tb := make([]string, len(b))
	for i, e := range a {
		ta[i] = e.Target
	}
	for i, e := range b {
		tb[i] = e.Target
	}
	sort.Strings(ta)
	sort.Strings(tb)
	return slices.Equal(ta, tb)
}

func oneToOneEqual(a, b map[Type]*oneToOneSub) bool {
	if len(a) != len(b) {
		return false
	}
	for t, subA := range a {
		subB, ok := b[t]
		if !ok || len(subA.forward) != len(subB.forward) {
			return false
		}
		for src, eA := range subA.forward {
			eB, ok := subB.forward[src]
			if !ok || eA.Target != eB.Target {
				return false
			}
		}
	}
	return true
}

func symmetricEqual(a, b map[Type]*symmetricSub) bool {
	if len(a) != len(b) {
		return false
	}
	for t, subA := range a {
		subB, ok := b[t]
		if !ok || len(subA.adjacency) != len(subB.adjacency) {
			return false
		}
		for node, adjA := range subA.adjacency {
			adjB, ok := subB.adjacency[node]
			if !ok {
				return false
			}
			sa := slices.Clone(adjA)
			sb := slices.Clone(adjB)
			sort.Strings(sa)
			sort.Strings(sb)
			if !slices.Equal(sa, sb) {
				return false
			}
		}
	}
	return true
}
