package location

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CanonicalPath is an absolute, clean, NFC-normalized, forward-slashed file
// path, with symlinks resolved on a best-effort basis (resolution only
// happens for paths that exist at canonicalization time).
//
// CanonicalPath is a value type with an unexported field; the zero value is
// invalid, test for it with [CanonicalPath.IsZero].
type CanonicalPath struct {
	path string
}

// NewCanonicalPath canonicalizes p: absolute, symlink-resolved (if it
// exists), NFC-normalized, forward-slashed.
func NewCanonicalPath(p string) (CanonicalPath, error) {
	if isUNC(strings.ReplaceAll(p, "\\", "/")) {
		return CanonicalPath{}, fmt.Errorf("%w: %q", ErrUNCPath, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return CanonicalPath{}, fmt.Errorf("canonicalize path %q: %w", p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if os.IsNotExist(err) {
			resolved = abs
		} else {
			return CanonicalPath{}, fmt.Errorf("canonicalize path %q: %w", p, err)
		}
	}
	canonical := toSlashNFC(resolved)
	if isUNC(canonical) {
		return CanonicalPath{}, fmt.Errorf("%w: %q", ErrUNCPath, p)
	}
	return CanonicalPath{path: canonical}, nil
}

// MustCanonicalPath is like [NewCanonicalPath] but panics on error. Use only
// where the path is known-good, e.g. initialization code.
func MustCanonicalPath(p string) CanonicalPath {
	cp, err := NewCanonicalPath(p)
	if err != nil {
		panic("location.MustCanonicalPath: " + err.Error())
	}
	return cp
}

// String returns the canonical path string.
func (c CanonicalPath) String() string {
	return c.path
}

// IsZero reports whether this is the zero value.
func (c CanonicalPath) IsZero() bool {
	return c.path == ""
}

// Base returns the final path element.
func (c CanonicalPath) Base() string {
	if c.IsZero() {
		return ""
	}
	return path.Base(c.path)
}

// Dir returns the parent directory as a CanonicalPath.
func (c CanonicalPath) Dir() CanonicalPath {
	if c.IsZero() {
		return CanonicalPath{}
	}
	return CanonicalPath{path: norm.NFC.String(path.Dir(path.Clean(c.path)))}
}

// Join appends relative elements and re-cleans the result. Returns an error
// if any element looks like an absolute path — passing one is almost
// certainly a caller bug; use NewCanonicalPath directly instead.
func (c CanonicalPath) Join(elem ...string) (CanonicalPath, error) {
	if c.IsZero() {
		return CanonicalPath{}, nil
	}
	joined := c.path
	for _, e := range elem {
		if looksAbsolute(e) {
			return CanonicalPath{}, fmt.Errorf("location: join element %q looks absolute; use NewCanonicalPath", e)
		}
		joined += "/" + strings.ReplaceAll(e, "\\", "/")
	}
	return CanonicalPath{path: norm.NFC.String(path.Clean(joined))}, nil
}

func toSlashNFC(p string) string {
	slashed := strings.ReplaceAll(p, "\\", "/")
	return norm.NFC.String(filepath.ToSlash(slashed))
}

func isUNC(p string) bool {
	return len(p) >= 2 && p[0] == '/' && p[1] == '/'
}

func looksAbsolute(e string) bool {
	if len(e) == 0 {
		return false
	}
	if e[0] == '/' {
		return true
	}
	if len(e) >= 2 && e[0] == '\\' && e[1] == '\\' {
		return true
	}
	if len(e) >= 3 && isASCIILetter(e[0]) && e[1] == ':' && (e[2] == '/' || e[2] == '\\') {
		return true
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
