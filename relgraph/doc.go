// Package relgraph implements the multi-arity relationship graph: named
// sub-graphs keyed by relationship-type token, each one of three shapes
// (one-to-many, one-to-one, symmetric), with transitive-reachability
// queries and per-file edge provenance so a workspace can precisely undo
// one file's contribution during re-population.
package relgraph
