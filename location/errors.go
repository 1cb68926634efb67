package location

import "errors"

// Sentinel errors for programmatic handling via errors.Is.

// ErrEmptySourceID is returned when a synthetic source identifier is empty.
var ErrEmptySourceID = errors.New("location: synthetic source ID cannot be empty")

// ErrAbsolutePathSourceID is returned when a synthetic source identifier
// resembles an absolute file path, which would collide with file-backed
// SourceIDs. Use a scheme prefix such as "stdlib://" or "inline:" instead.
var ErrAbsolutePathSourceID = errors.New("location: synthetic source ID looks like an absolute file path")

// ErrUNCPath is returned when a UNC path is supplied where a local
// filesystem path is required.
var ErrUNCPath = errors.New("location: UNC paths are not supported")

// ErrNotAbsolute is returned when an absolute path is required but a
// relative path was supplied.
var ErrNotAbsolute = errors.New("location: path is not absolute")
