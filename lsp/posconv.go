package lsp

import (
	"unicode/utf8"

	"github.com/sysml-tools/semcore/location"
)

// PositionEncoding is the LSP position-encoding kind negotiated with the
// client. glsp only implements LSP 3.16, which predates encoding
// negotiation (3.17), so the server always advertises and uses UTF-16,
// per the teacher's lsp/workspace.go comment.
type PositionEncoding string

const (
	PositionEncodingUTF16 PositionEncoding = "utf-16"
	PositionEncodingUTF8  PositionEncoding = "utf-8"
)

// byteOffsetFromLSP converts a zero-based LSP (line, character) pair into
// a byte offset within the content registered for sourceID, honoring the
// negotiated encoding. Returns (0, false) if the source or line is
// unknown.
func byteOffsetFromLSP(registry *location.Registry, sourceID location.SourceID, line, char int, enc PositionEncoding) (int, bool) {
	lineStart, ok := registry.LineStartByte(sourceID, line)
	if !ok {
		return 0, false
	}
	content, ok := registry.ContentBySource(sourceID)
	if !ok {
		return 0, false
	}
	if enc == PositionEncodingUTF8 {
		return clampToLineEnd(content, lineStart, lineStart+char), true
	}
	return utf16CharToByteOffset(content, lineStart, char), true
}

// positionFromLSP converts an LSP position into a [location.Position],
// for feeding into the query package.
func positionFromLSP(registry *location.Registry, sourceID location.SourceID, line, char int, enc PositionEncoding) (location.Position, bool) {
	byteOffset, ok := byteOffsetFromLSP(registry, sourceID, line, char, enc)
	if !ok {
		return location.Position{}, false
	}
	pos := registry.PositionAt(sourceID, byteOffset)
	if !pos.IsKnown() {
		return location.Position{}, false
	}
	return pos, true
}

// spanToLSPRange converts a [location.Span] to zero-based (line, char)
// start/end pairs in the negotiated encoding. Falls back to the span's
// own rune-based column when the source isn't registered (e.g. a
// stdlib:// synthetic source the client never opened).
func spanToLSPRange(registry *location.Registry, span location.Span, enc PositionEncoding) (start, end [2]int) {
	start = lspPoint(registry, span.Source, span.Start, enc)
	end = start
	if span.End.IsKnown() {
		end = lspPoint(registry, span.Source, span.End, enc)
	}
	return start, end
}

func lspPoint(registry *location.Registry, source location.SourceID, pos location.Position, enc PositionEncoding) [2]int {
	if !pos.IsKnown() {
		return [2]int{0, 0}
	}
	if pos.HasByte() {
		if content, ok := registry.ContentBySource(source); ok {
			if lineStart, ok := registry.LineStartByte(source, pos.Line); ok {
				if enc == PositionEncodingUTF8 {
					return [2]int{pos.Line, pos.Byte - lineStart}
				}
				return [2]int{pos.Line, byteToUTF16Offset(content, lineStart, pos.Byte)}
			}
		}
	}
	return [2]int{pos.Line, pos.Column}
}

func utf16CharToByteOffset(content []byte, lineStart, charOffset int) int {
	if charOffset <= 0 {
		return lineStart
	}
	pos := lineStart
	units := 0
	for pos < len(content) && units < charOffset {
		r, size := utf8.DecodeRune(content[pos:])
		if r == utf8.RuneError && size <= 1 {
			units++
			pos++
			continue
		}
		if r == '\n' {
			break
		}
		if r > 0xFFFF {
			if units+2 > charOffset && units+1 == charOffset {
				return pos
			}
			units += 2
		} else {
			units++
		}
		pos += size
	}
	return pos
}

func byteToUTF16Offset(content []byte, lineStart, targetByte int) int {
	if targetByte <= lineStart {
		return 0
	}
	units := 0
	pos := lineStart
	for pos < targetByte && pos < len(content) {
		r, size := utf8.DecodeRune(content[pos:])
		if r == utf8.RuneError && size <= 1 {
			units++
			pos++
			continue
		}
		if r == '\n' || pos+size > targetByte {
			break
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		pos += size
	}
	return units
}

func clampToLineEnd(content []byte, lineStart, offset int) int {
	if offset < lineStart {
		return lineStart
	}
	for i := lineStart; i < len(content); i++ {
		if content[i] == '\n' {
			if offset > i {
				return i
			}
			return offset
		}
	}
	if offset > len(content) {
		return len(content)
	}
	return offset
}
