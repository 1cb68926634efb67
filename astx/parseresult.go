package astx

import "github.com/sysml-tools/semcore/diag"

// ParseResult is the outcome of parsing one source file: a SyntaxFile (full
// or, under error recovery, partial) plus zero or more positioned parse
// errors, or no content at all when parsing produced nothing usable.
//
// Parse errors never abort ingestion: a workspace receiving a ParseResult
// with no content declines to add the file but continues with the rest of
// the batch.
type ParseResult struct {
	content *SyntaxFile
	errors  []diag.Issue
}

// Success wraps a fully parsed file with no errors.
func Success(file SyntaxFile) ParseResult {
	return ParseResult{content: &file}
}

// Recovered wraps a partially parsed file alongside the parse errors that
// error recovery produced.
func Recovered(file SyntaxFile, errors []diag.Issue) ParseResult {
	return ParseResult{content: &file, errors: cloneIssues(errors)}
}

// Failed reports a parse that produced no usable tree at all.
func Failed(errors []diag.Issue) ParseResult {
	return ParseResult{errors: cloneIssues(errors)}
}

// Content returns the parsed file and true if parsing produced one, in
// full or in part.
func (r ParseResult) Content() (SyntaxFile, bool) {
	if r.content == nil {
		return SyntaxFile{}, false
	}
	return *r.content, true
}

// HasContent reports whether a SyntaxFile (possibly partial) is available.
func (r ParseResult) HasContent() bool {
	return r.content != nil
}

// Errors returns the parse errors, if any. The returned slice is a copy.
func (r ParseResult) Errors() []diag.Issue {
	return cloneIssues(r.errors)
}

// OK reports whether parsing produced no errors at all.
func (r ParseResult) OK() bool {
	return len(r.errors) == 0
}

func cloneIssues(issues []diag.Issue) []diag.Issue {
	if issues == nil {
		return nil
	}
	out := make([]diag.Issue, len(issues))
	copy(out, issues)
	return out
}
