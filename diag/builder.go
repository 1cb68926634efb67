package diag

import (
	"fmt"

	"github.com/sysml-tools/semcore/location"
)

// IssueBuilder provides fluent construction of [Issue] values.
//
// IssueBuilder is the only valid construction path for Issue values in
// production code; direct struct-literal construction bypasses validity
// checks and will panic when the issue reaches [Collector.Collect].
//
// Example:
//
//	issue := diag.NewIssue(diag.Error, diag.CodeDuplicateDefinition, `"X" is already defined`).
//	    WithSpan(span).
//	    WithRelated(location.RelatedInfo{Span: previousSpan, Message: location.MsgPreviousDefinition}).
//	    Build()
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue with its required fields. Panics if
// severity is out of range, code is zero, or message is empty — these are
// programmer errors that should fail at construction time, not at
// collection time.
func NewIssue(severity Severity, code Code, message string) *IssueBuilder {
	if severity > Hint {
		panic(fmt.Sprintf("diag.NewIssue: invalid severity %d", severity))
	}
	if code.IsZero() {
		panic("diag.NewIssue: zero code")
	}
	if message == "" {
		panic("diag.NewIssue: empty message")
	}
	return &IssueBuilder{
		issue: Issue{severity: severity, code: code, message: message},
	}
}

// FromIssue creates a builder initialized from an existing issue, for
// augmenting an issue (e.g. adding details while bubbling it up through a
// validator chain) without mutating the original. Panics if issue is zero
// or invalid.
func FromIssue(issue Issue) *IssueBuilder {
	if issue.IsZero() {
		panic("diag.FromIssue: zero-value Issue")
	}
	if !issue.IsValid() {
		panic(fmt.Sprintf("diag.FromIssue: invalid Issue (code=%s)", issue.Code()))
	}
	b := &IssueBuilder{issue: Issue{
		severity: issue.severity,
		code:     issue.code,
		message:  issue.message,
		hint:     issue.hint,
		span:     issue.span,
	}}
	if len(issue.related) > 0 {
		b.issue.related = append([]location.RelatedInfo(nil), issue.related...)
	}
	if len(issue.details) > 0 {
		b.issue.details = append([]Detail(nil), issue.details...)
	}
	return b
}

// WithSpan sets the source span.
func (b *IssueBuilder) WithSpan(span location.Span) *IssueBuilder {
	b.issue.span = span
	return b
}

// WithHint sets the resolution suggestion.
func (b *IssueBuilder) WithHint(hint string) *IssueBuilder {
	b.issue.hint = hint
	return b
}

// WithRelated appends related location information. Multiple calls append;
// when adding an ordered sequence (e.g. an import cycle), pass entries in
// chain order.
func (b *IssueBuilder) WithRelated(related ...location.RelatedInfo) *IssueBuilder {
	b.issue.related = append(b.issue.related, related...)
	return b
}

// WithDetail appends a single key-value detail.
func (b *IssueBuilder) WithDetail(key, value string) *IssueBuilder {
	b.issue.details = append(b.issue.details, Detail{Key: key, Value: value})
	return b
}

// WithDetails appends key-value details.
func (b *IssueBuilder) WithDetails(details ...Detail) *IssueBuilder {
	b.issue.details = append(b.issue.details, details...)
	return b
}

// WithExpectedGot is a convenience for type-mismatch issues (E003),
// equivalent to WithDetails(ExpectedGot(expected, got)...).
func (b *IssueBuilder) WithExpectedGot(expected, got string) *IssueBuilder {
	return b.WithDetails(ExpectedGot(expected, got)...)
}

// Build returns the constructed issue. Build deep-copies the related and
// details slices into fresh slices so builder reuse cannot mutate a
// previously built issue.
func (b *IssueBuilder) Build() Issue {
	result := b.issue
	if len(b.issue.related) > 0 {
		result.related = append([]location.RelatedInfo(nil), b.issue.related...)
	}
	if len(b.issue.details) > 0 {
		result.details = append([]Detail(nil), b.issue.details...)
	}
	return result
}
