package workspace

import (
	"fmt"

	"github.com/sysml-tools/semcore/diag"
	"github.com/sysml-tools/semcore/location"
)

// Error is a plain workspace-mutation error: file-not-found or
// unsupported-extension, per spec.md §7's "workspace errors ... returned
// from workspace mutations as plain error values." Code identifies which
// of the two this is, for callers that want to branch on it without
// string matching.
type Error struct {
	Code diag.Code
	Path location.SourceID
}

func (e *Error) Error() string {
	return fmt.Sprintf("workspace: %s: %s", e.Code, e.Path)
}

func errFileNotFound(path location.SourceID) error {
	return &Error{Code: diag.CodeFileNotFound, Path: path}
}

func errUnsupportedExtension(path location.SourceID) error {
	return &Error{Code: diag.CodeUnsupportedLanguage, Path: path}
}
