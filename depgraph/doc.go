// Package depgraph implements the cross-file dependency tracker: a reverse
// import index mapping each file to the files that import it, used to
// answer "which files must be re-populated if this one changed" and to
// order population so imported files are processed before importers.
package depgraph
