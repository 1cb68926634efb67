package resolve

import "strings"

// ImportSeparator joins qualified-name and import-path components.
const ImportSeparator = "::"

// Parse splits a possibly qualified name or import path into its `::`
// separated components. Parse("A::B::C") returns ["A", "B", "C"];
// Parse("A") returns ["A"].
func Parse(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ImportSeparator)
}

// IsWildcard reports whether path denotes a wildcard import: a trailing
// `::*` or a bare `*`. This does not match the recursive-wildcard form
// `::**`; use IsRecursiveWildcard for that.
func IsWildcard(path string) bool {
	return path == "*" || strings.HasSuffix(path, ImportSeparator+"*")
}

// IsRecursiveWildcard reports whether path ends in the recursive-wildcard
// suffix `::**`.
func IsRecursiveWildcard(path string) bool {
	return strings.HasSuffix(path, ImportSeparator+"**")
}

// Join concatenates qualified-name components with `::`.
func Join(components ...string) string {
	return strings.Join(components, ImportSeparator)
}

// Base strips a trailing wildcard marker (`*` or `**`, with its preceding
// `::` if present) from an import path, returning the namespace path the
// wildcard ranges over. Base("A::B::*") == "A::B"; Base("A::B") == "A::B".
func Base(path string) string {
	switch {
	case path == "*":
		return ""
	case strings.HasSuffix(path, ImportSeparator+"**"):
		return strings.TrimSuffix(path, ImportSeparator+"**")
	case strings.HasSuffix(path, ImportSeparator+"*"):
		return strings.TrimSuffix(path, ImportSeparator+"*")
	default:
		return path
	}
}
