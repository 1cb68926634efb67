package location

// Common RelatedInfo messages, kept as constants so diagnostics across the
// module use uniform wording.
const (
	MsgPreviousDefinition = "previous definition here"
	MsgImportedFrom       = "imported from here"
	MsgDeclaredHere       = "declared here"
	MsgReferencedFrom     = "referenced from here"
)

// RelatedInfo describes a secondary location attached to a diagnostic, e.g.
// "previous definition here" for a duplicate-definition error.
type RelatedInfo struct {
	Span    Span
	Message string
}

// IsValid reports whether the related info carries meaningful content: a
// valid span, a message, or both.
func (r RelatedInfo) IsValid() bool {
	return r.Span.IsValid() || r.Message != ""
}

// String renders "span: message", falling back to whichever field is set.
func (r RelatedInfo) String() string {
	if r.Span.IsZero() {
		return r.Message
	}
	if r.Message == "" {
		return r.Span.String()
	}
	return r.Span.String() + ": " + r.Message
}
