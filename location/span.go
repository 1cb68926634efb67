package location

import "fmt"

// Span represents a half-open range [Start, End) in a source file, ordered
// per the data model: by Start, then by End.
//
// Span is a value type with exported fields. The zero value represents "no
// location"; test for it with [Span.IsZero].
type Span struct {
	// Source identifies which file (or synthetic source) this span belongs to.
	Source SourceID

	// Start is the inclusive start position.
	Start Position

	// End is the exclusive end position. For single-point spans, End equals
	// Start.
	End Position
}

// Point creates a single-point Span where Start == End, with an unknown
// byte offset. This is the usual way to build a span for a name occurrence
// when only line/column are available.
func Point(source SourceID, line, column int) Span {
	pos := Position{Line: line, Column: column, Byte: -1}
	return Span{Source: source, Start: pos, End: pos}
}

// PointWithByte creates a single-point Span with a known byte offset.
func PointWithByte(source SourceID, line, column, byteOffset int) Span {
	pos := Position{Line: line, Column: column, Byte: byteOffset}
	return Span{Source: source, Start: pos, End: pos}
}

// Range creates a Span from start to end coordinates (byte offsets
// unknown). Panics if end is before start.
func Range(source SourceID, startLine, startCol, endLine, endCol int) Span {
	start := Position{Line: startLine, Column: startCol, Byte: -1}
	end := Position{Line: endLine, Column: endCol, Byte: -1}
	if positionBefore(end, start) {
		panic(fmt.Sprintf("location.Range: end %v before start %v", end, start))
	}
	return Span{Source: source, Start: start, End: end}
}

// RangeWithBytes creates a Span with known byte offsets. Panics if end is
// before start, preferring byte-offset comparison when both ends carry one.
func RangeWithBytes(source SourceID, startLine, startCol, startByte, endLine, endCol, endByte int) Span {
	start := Position{Line: startLine, Column: startCol, Byte: startByte}
	end := Position{Line: endLine, Column: endCol, Byte: endByte}
	if start.HasByte() && end.HasByte() {
		if end.Byte < start.Byte {
			panic(fmt.Sprintf("location.RangeWithBytes: end byte %d before start byte %d", endByte, startByte))
		}
	} else if positionBefore(end, start) {
		panic(fmt.Sprintf("location.RangeWithBytes: end %v before start %v", end, start))
	}
	return Span{Source: source, Start: start, End: end}
}

// IsZero reports whether the span is the zero value.
func (s Span) IsZero() bool {
	return s == (Span{}) || (s.Source.IsZero() && !s.Start.IsKnown() && !s.End.IsKnown())
}

// IsPoint reports whether the span represents a single point.
func (s Span) IsPoint() bool {
	return s.Start == s.End
}

// IsValid reports whether the span is convertible to an LSP range: non-zero
// source, known start, and (for non-point spans) known end.
func (s Span) IsValid() bool {
	if s.Source.IsZero() {
		return false
	}
	if !s.Start.IsKnown() {
		return false
	}
	if !s.IsPoint() && !s.End.IsKnown() {
		return false
	}
	return true
}

// IsGeometricallySafe reports whether Start <= End, using byte offsets when
// both ends carry one and falling back to line/column otherwise.
func (s Span) IsGeometricallySafe() bool {
	if s.IsZero() || s.IsPoint() {
		return true
	}
	if s.Start.HasByte() && s.End.HasByte() {
		return s.Start.Byte <= s.End.Byte
	}
	return !positionBefore(s.End, s.Start)
}

// String renders the span as "source:line:column" for points or
// "source:startLine:startCol-endLine:endCol" for ranges, using 1-based
// display coordinates. Returns "<no location>" for the zero span.
func (s Span) String() string {
	if s.IsZero() {
		return "<no location>"
	}
	src := s.Source.String()
	if s.IsPoint() {
		return fmt.Sprintf("%s:%s", src, s.Start.String())
	}
	return fmt.Sprintf("%s:%d:%d-%d:%d", src, s.Start.Line+1, s.Start.Column+1, s.End.Line+1, s.End.Column+1)
}

// Contains reports whether position p falls within this half-open span.
// Point spans contain no positions; use [Span.ContainsOrEquals] to also
// match the exact location of a point span.
func (s Span) Contains(p Position) bool {
	if s.IsZero() || !p.IsKnown() {
		return false
	}
	if s.Start.HasByte() && s.End.HasByte() && p.HasByte() {
		return p.Byte >= s.Start.Byte && p.Byte < s.End.Byte
	}
	if positionBefore(p, s.Start) {
		return false
	}
	return positionBefore(p, s.End)
}

// ContainsOrEquals reports whether p is within the span, or equals the
// location of a point span.
func (s Span) ContainsOrEquals(p Position) bool {
	if s.Contains(p) {
		return true
	}
	return s.IsPoint() && s.Start == p
}

// Overlaps reports whether the two spans (which must share a Source) have
// any position in common.
func (s Span) Overlaps(other Span) bool {
	if s.Source != other.Source || s.IsZero() || other.IsZero() {
		return false
	}
	if s.Start.HasByte() && s.End.HasByte() && other.Start.HasByte() && other.End.HasByte() {
		return s.Start.Byte < other.End.Byte && other.Start.Byte < s.End.Byte
	}
	if !positionBefore(s.Start, other.End) {
		return false
	}
	return positionBefore(other.Start, s.End)
}

// ContainsSpan reports whether this span fully contains other.
func (s Span) ContainsSpan(other Span) bool {
	if s.Source != other.Source || s.IsZero() || other.IsZero() {
		return false
	}
	if s.Start.HasByte() && s.End.HasByte() && other.Start.HasByte() && other.End.HasByte() {
		return other.Start.Byte >= s.Start.Byte && other.End.Byte <= s.End.Byte
	}
	if positionBefore(other.Start, s.Start) {
		return false
	}
	return !positionBefore(s.End, other.End)
}

// Merge combines two same-source spans into one covering both. Panics if
// the spans come from different sources or either is invalid.
func Merge(a, b Span) Span {
	if a.Source != b.Source {
		panic(fmt.Sprintf("location.Merge: source mismatch: %q vs %q", a.Source.String(), b.Source.String()))
	}
	if !a.IsValid() || !b.IsValid() {
		panic("location.Merge: invalid span")
	}
	return mergeSpans(a, b)
}

// MergeSafe is the non-panicking variant of Merge, for untrusted-provenance
// spans (e.g. those produced mechanically by an adapter).
func MergeSafe(a, b Span) (Span, bool) {
	if a.Source != b.Source || !a.IsValid() || !b.IsValid() {
		return Span{}, false
	}
	if !a.IsGeometricallySafe() || !b.IsGeometricallySafe() {
		return Span{}, false
	}
	return mergeSpans(a, b), true
}

func mergeSpans(a, b Span) Span {
	start := a.Start
	if positionBefore(b.Start, a.Start) {
		start = b.Start
	}
	end := a.End
	if positionBefore(a.End, b.End) {
		end = b.End
	}
	return Span{Source: a.Source, Start: start, End: end}
}

// Compare orders two spans by Source, then Start, then End — the ordering
// the data model specifies for spans.
func Compare(a, b Span) int {
	srcA, srcB := a.Source.String(), b.Source.String()
	if srcA != srcB {
		if srcA < srcB {
			return -1
		}
		return 1
	}
	if cmp := comparePositions(a.Start, b.Start); cmp != 0 {
		return cmp
	}
	return comparePositions(a.End, b.End)
}

// positionBefore reports whether a is strictly before b, treating unknown
// positions as incomparable (never "before").
func positionBefore(a, b Position) bool {
	if !a.IsKnown() || !b.IsKnown() {
		return false
	}
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
