package resolve

import "github.com/sysml-tools/semcore/astx"

// ExtractImports walks every element of file, recursively, and returns the
// import path of each import declaration found, in source order. Both
// dialects share this walk since astx.Element is dialect-agnostic.
func ExtractImports(file astx.SyntaxFile) []string {
	var paths []string
	var walk func(elements []astx.Element)
	walk = func(elements []astx.Element) {
		for _, el := range elements {
			if el.IsImport() {
				paths = append(paths, el.ImportPath)
			}
			walk(el.Children)
		}
	}
	walk(file.Elements)
	return paths
}
