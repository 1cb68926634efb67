package main

import (
	"sync"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
)

// ParseFunc turns one file's text into a parse result, given a registry
// already populated with that file's content under sourceID (so an
// implementation can build byte-accurate spans from it). The concrete
// grammar and parser library are an external collaborator this module
// never implements; a real deployment supplies one via
// [RegisterParseFunc].
type ParseFunc func(sourceID location.SourceID, content string, registry *location.Registry) astx.ParseResult

var (
	parseMu sync.Mutex
	parseFn ParseFunc
)

// RegisterParseFunc installs the grammar integration this binary analyzes
// files with. Call it from an init() in a blank-imported package, the way
// database/sql drivers and image decoders register themselves.
func RegisterParseFunc(pf ParseFunc) {
	parseMu.Lock()
	defer parseMu.Unlock()
	parseFn = pf
}

func registeredParseFunc() (ParseFunc, bool) {
	parseMu.Lock()
	defer parseMu.Unlock()
	return parseFn, parseFn != nil
}
