package astx

// SyntaxFile is the dialect-tagged syntax tree for one source file: a list
// of top-level elements plus an optional file-level namespace declaration.
// The core treats both dialects uniformly via this type; only the adapter
// layer (which produced it) knows the dialect's grammar.
type SyntaxFile struct {
	Dialect   Dialect
	Namespace *NamespaceDecl
	Elements  []Element
}

// NewSyntaxFile constructs a SyntaxFile for the given dialect.
func NewSyntaxFile(dialect Dialect, namespace *NamespaceDecl, elements []Element) SyntaxFile {
	return SyntaxFile{Dialect: dialect, Namespace: namespace, Elements: elements}
}

// IsSysML reports whether this file was parsed as SysML.
func (f SyntaxFile) IsSysML() bool {
	return f.Dialect == SysML
}

// IsKerML reports whether this file was parsed as KerML.
func (f SyntaxFile) IsKerML() bool {
	return f.Dialect == KerML
}

// HasNamespace reports whether the file declares a file-level namespace.
func (f SyntaxFile) HasNamespace() bool {
	return f.Namespace != nil
}
