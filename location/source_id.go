package location

import "fmt"

// SourceID identifies a source uniquely within a workspace.
//
// A SourceID is either file-backed (built from a [CanonicalPath]) or
// synthetic (an opaque string such as "stdlib://sysml.library/Base" or
// "test://unit/vehicle.sysml"). SourceID is comparable and safe as a map
// key; equality is structural.
type SourceID struct {
	cp        CanonicalPath
	synthetic string
}

// NewSyntheticSourceID creates a SourceID for a non-file source. Panics if
// identifier is empty or resembles an absolute path, since that would
// collide with file-backed SourceIDs.
func NewSyntheticSourceID(identifier string) SourceID {
	if identifier == "" {
		panic("location.NewSyntheticSourceID: " + ErrEmptySourceID.Error())
	}
	if looksAbsolute(identifier) || (len(identifier) > 0 && identifier[0] == '/') {
		panic(fmt.Sprintf("location.NewSyntheticSourceID: %v: %q", ErrAbsolutePathSourceID, identifier))
	}
	return SourceID{synthetic: identifier}
}

// SourceIDFromPath canonicalizes path (resolving symlinks) and returns a
// file-backed SourceID.
func SourceIDFromPath(path string) (SourceID, error) {
	cp, err := NewCanonicalPath(path)
	if err != nil {
		return SourceID{}, fmt.Errorf("source ID from path %q: %w", path, err)
	}
	return SourceID{cp: cp}, nil
}

// MustSourceIDFromPath is like [SourceIDFromPath] but panics on error.
func MustSourceIDFromPath(path string) SourceID {
	sid, err := SourceIDFromPath(path)
	if err != nil {
		panic("location.MustSourceIDFromPath: " + err.Error())
	}
	return sid
}

// SourceIDFromCanonicalPath wraps an already-canonical path.
func SourceIDFromCanonicalPath(cp CanonicalPath) SourceID {
	return SourceID{cp: cp}
}

// SourceIDFromAbsolutePath builds a SourceID from a path that is already
// absolute and NFC/slash-normalized, without touching the filesystem. This
// supports in-memory loading (e.g. a standard-library loader populating
// sources from an embedded archive) where paths have no symlinks to
// resolve and repeated [filepath.EvalSymlinks] calls would be wasted work.
//
// Returns ErrNotAbsolute if path is not absolute.
func SourceIDFromAbsolutePath(path string) (SourceID, error) {
	if !looksAbsolute(path) {
		return SourceID{}, fmt.Errorf("source ID from absolute path %q: %w", path, ErrNotAbsolute)
	}
	return SourceID{cp: CanonicalPath{path: toSlashNFC(path)}}, nil
}

// String returns the source's identity string: the canonical path for
// file-backed sources, or the opaque identifier for synthetic ones.
func (s SourceID) String() string {
	if s.synthetic != "" {
		return s.synthetic
	}
	return s.cp.String()
}

// IsZero reports whether this is the zero value. A zero SourceID must never
// be used to key workspace state.
func (s SourceID) IsZero() bool {
	return s.cp.IsZero() && s.synthetic == ""
}

// IsFilePath reports whether this SourceID is file-backed.
func (s SourceID) IsFilePath() bool {
	return !s.cp.IsZero()
}

// CanonicalPath returns the underlying CanonicalPath and true, if this
// SourceID is file-backed.
func (s SourceID) CanonicalPath() (CanonicalPath, bool) {
	if s.cp.IsZero() {
		return CanonicalPath{}, false
	}
	return s.cp, true
}
