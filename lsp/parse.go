package lsp

import (
	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
)

// ParseFunc turns one document's current text into a parse result. It is
// the external grammar/parser collaborator spec.md §1 lists out of scope
// ("the concrete grammar rules and the parser library integration"): the
// dialect's ANTLR grammar lives outside this package. registry is already
// populated with content under sourceID by the time ParseFunc is called,
// so an implementation can hand it straight to
// [github.com/sysml-tools/semcore/internal/spanbuilder.New] to build
// spans from parser-rule contexts, mirroring
// [github.com/sysml-tools/semcore/stdlib.ParseFunc]'s role at the
// standard-library boundary.
type ParseFunc func(sourceID location.SourceID, content string, registry *location.Registry) astx.ParseResult
