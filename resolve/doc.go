// Package resolve implements the name resolver: local and qualified
// (`A::B::C`) symbol-table lookup, plus import-path parsing utilities
// shared by the adapter and reference-collector layers.
package resolve
