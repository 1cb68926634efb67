package diag

// CodeCategory represents the semantic domain of an error code: which of
// the three error-handling taxonomies (parse, semantic, I/O) it belongs to.
type CodeCategory uint8

const (
	// CategorySentinel is for internal sentinel codes (collector limits,
	// invariant violations) that never surface as document diagnostics.
	CategorySentinel CodeCategory = iota

	// CategorySemantic is for `E***` codes raised by the adapter layer,
	// the validator layer, or the reference collector during population.
	CategorySemantic

	// CategoryParse is for `P***` codes raised while turning source text
	// into a parse result.
	CategoryParse

	// CategoryIO is for `IO***` codes raised by workspace file operations.
	CategoryIO
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategorySemantic:
		return "semantic"
	case CategoryParse:
		return "parse"
	case CategoryIO:
		return "io"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Code uses an unexported constructor so only the codes defined in this
// package are valid values; there is no way for calling code to fabricate
// an arbitrary code string that would bypass the closed set in the error
// code table.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's wire representation, e.g. "E001".
func (c Code) String() string {
	return c.value
}

// Category returns the code's taxonomy.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes. Never attached to a document diagnostic.
var (
	// CodeLimitReached marks a collector's own limit-exceeded condition.
	CodeLimitReached = code("INTERNAL_LIMIT_REACHED", CategorySentinel)

	// CodeInternal indicates an unexpected invariant failure inside the
	// engine itself, not a fault in the analyzed source.
	CodeInternal = code("INTERNAL_ERROR", CategorySentinel)
)

// Semantic codes (E001-E013), raised by the adapter, the relationship
// validators, and the reference collector during population.
var (
	CodeDuplicateDefinition     = code("E001", CategorySemantic) // Duplicate definition
	CodeUndefinedReference      = code("E002", CategorySemantic) // Undefined reference
	CodeTypeMismatch            = code("E003", CategorySemantic) // Type mismatch
	CodeInvalidRelationshipType = code("E004", CategorySemantic) // Invalid type for relationship
	CodeCircularDependency      = code("E005", CategorySemantic) // Circular dependency
	CodeInvalidSpecialization   = code("E006", CategorySemantic) // Invalid specialization
	CodeInvalidRedefinition     = code("E007", CategorySemantic) // Invalid redefinition
	CodeInvalidSubsetting       = code("E008", CategorySemantic) // Invalid subsetting
	CodeConstraintViolation     = code("E009", CategorySemantic) // Constraint violation
	CodeInvalidFeatureContext   = code("E010", CategorySemantic) // Invalid feature context
	CodeAbstractInstantiation   = code("E011", CategorySemantic) // Abstract instantiation
	CodeInvalidImport           = code("E012", CategorySemantic) // Invalid import
	CodeUnsupportedLanguage     = code("E013", CategorySemantic) // Unsupported language
)

// Parse codes (P001-P003), raised while producing a parse result.
var (
	CodeSyntaxError      = code("P001", CategoryParse) // Syntax error
	CodeASTConstruction  = code("P002", CategoryParse) // AST construction error
	CodeFileIOErrorParse = code("P003", CategoryParse) // File I/O error (surfaced via parse result)
)

// I/O codes (IO001-IO002), returned from workspace mutations.
var (
	CodeFileNotFound    = code("IO001", CategoryIO) // File not found
	CodePermissionDenied = code("IO002", CategoryIO) // Permission denied
)

// allCodes contains all defined codes, for AllCodes() and uniqueness checks.
var allCodes = []Code{
	CodeLimitReached,
	CodeInternal,
	CodeDuplicateDefinition,
	CodeUndefinedReference,
	CodeTypeMismatch,
	CodeInvalidRelationshipType,
	CodeCircularDependency,
	CodeInvalidSpecialization,
	CodeInvalidRedefinition,
	CodeInvalidSubsetting,
	CodeConstraintViolation,
	CodeInvalidFeatureContext,
	CodeAbstractInstantiation,
	CodeInvalidImport,
	CodeUnsupportedLanguage,
	CodeSyntaxError,
	CodeASTConstruction,
	CodeFileIOErrorParse,
	CodeFileNotFound,
	CodePermissionDenied,
}

// AllCodes returns all defined codes. The returned slice is a copy.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns the codes in the given category. The returned
// slice is a new allocation.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
