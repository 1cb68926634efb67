package diag

// Detail provides key-value context for diagnostic issues: structured
// information a tool can inspect programmatically instead of parsing the
// message text.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys. Custom keys are permitted for domain-specific
// diagnostics; use lower_snake_case for custom keys.
const (
	DetailKeyExpected        = "expected"         // expected kind/type
	DetailKeyGot             = "got"              // actual kind/type
	DetailKeySymbolName      = "symbol"           // symbol name involved
	DetailKeyQualifiedName   = "qualified_name"    // fully-qualified symbol name
	DetailKeyRelationshipType = "relationship_type" // relationship_type token
	DetailKeyImportPath      = "import_path"       // import path text
	DetailKeyDialect         = "dialect"           // "sysml" or "kerml"
	DetailKeyCycle           = "cycle"             // cycle participants, joined
	DetailKeyConstraint      = "constraint"        // constraint expression text
)

// ExpectedGot creates a pair of details for type-mismatch diagnostics.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// SymbolRelationship creates detail entries for relationship-validation
// diagnostics (E004, E006-E008, E010).
func SymbolRelationship(symbolName, relationshipType string) []Detail {
	return []Detail{
		{Key: DetailKeySymbolName, Value: symbolName},
		{Key: DetailKeyRelationshipType, Value: relationshipType},
	}
}
