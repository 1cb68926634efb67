package location

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"
)

// PositionRegistry converts byte offsets within a registered source into
// Positions. Implementations must be safe for concurrent use.
type PositionRegistry interface {
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter converts rune indices (as produced by rune-based
// parsers such as ANTLR) into byte offsets. Implementations must be safe
// for concurrent use.
type RuneOffsetConverter interface {
	RuneToByteOffset(source SourceID, runeIndex int) (int, bool)
}

// sourceEntry holds the content and precomputed indices for one source.
type sourceEntry struct {
	content []byte
	// lineOffsets[i] is the byte offset of the start of zero-based line i.
	// lineOffsets[0] is always 0.
	lineOffsets []int
	// runeOffsets[i] is the byte offset of the i-th rune. Used for O(1)
	// rune-to-byte conversion (ANTLR token positions are rune-indexed).
	runeOffsets []int
}

// KeyCollisionError indicates that a registration was attempted with a
// SourceID that already exists under different content.
type KeyCollisionError struct {
	SourceID SourceID
}

func (e *KeyCollisionError) Error() string {
	return fmt.Sprintf("location: source key collision: different content registered for %q", e.SourceID.String())
}

// RegistryStats reports memory usage for a Registry.
type RegistryStats struct {
	SourceCount  int
	ContentBytes int64
	IndexBytes   int64
}

// Registry stores source content and serves byte-offset <-> Position
// conversions. It implements [PositionRegistry] and [RuneOffsetConverter].
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[SourceID]*sourceEntry
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[SourceID]*sourceEntry)}
}

// Register stores content under sourceID. The content is defensively
// cloned; callers may mutate or discard the original slice afterward.
//
// Registering the same sourceID with identical content is idempotent.
// Registering the same sourceID with different content returns
// [*KeyCollisionError].
func (r *Registry) Register(sourceID SourceID, content []byte) error {
	cloned := slices.Clone(content)
	lineOffsets := computeLineOffsets(cloned)
	runeOffsets := computeRuneOffsets(cloned)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[sourceID]; ok {
		if bytes.Equal(existing.content, cloned) {
			return nil
		}
		return &KeyCollisionError{SourceID: sourceID}
	}

	r.entries[sourceID] = &sourceEntry{
		content:     cloned,
		lineOffsets: lineOffsets,
		runeOffsets: runeOffsets,
	}
	return nil
}

// ContentBySource returns a defensive copy of the content for sourceID, or
// (nil, false) if it is not registered.
func (r *Registry) ContentBySource(sourceID SourceID) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[sourceID]
	if !ok {
		return nil, false
	}
	return slices.Clone(entry.content), true
}

// Content returns a defensive copy of the content backing span.Source.
func (r *Registry) Content(span Span) ([]byte, bool) {
	return r.ContentBySource(span.Source)
}

// PositionAt converts byteOffset in source to a zero-indexed Position.
//
// Returns [UnknownPosition] if source is not registered, byteOffset is
// negative, or byteOffset exceeds the content length. byteOffset ==
// len(content) is valid and yields an EOF position.
func (r *Registry) PositionAt(source SourceID, byteOffset int) Position {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[source]
	if !ok {
		return UnknownPosition()
	}
	if byteOffset < 0 || byteOffset > len(entry.content) {
		return UnknownPosition()
	}

	line := findLine(entry.lineOffsets, byteOffset)
	lineStart := entry.lineOffsets[line]
	column := columnFromByteOffset(entry.runeOffsets, lineStart, byteOffset, len(entry.content))

	return NewPosition(line, column, byteOffset)
}

// LineStartByte returns the byte offset of the start of the given
// zero-based line. Returns (0, false) if source is not registered or line
// is out of range.
func (r *Registry) LineStartByte(source SourceID, line int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[source]
	if !ok {
		return 0, false
	}
	if line < 0 || line >= len(entry.lineOffsets) {
		return 0, false
	}
	return entry.lineOffsets[line], true
}

// RuneToByteOffset converts a zero-based rune index to a byte offset.
// Implements [RuneOffsetConverter], letting rune-indexed parser output
// (such as ANTLR tokens) be converted to byte offsets in O(1).
//
// runeIndex == number of runes in the source returns (len(content), true)
// for EOF.
func (r *Registry) RuneToByteOffset(source SourceID, runeIndex int) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[source]
	if !ok {
		return 0, false
	}
	if runeIndex < 0 {
		return 0, false
	}
	if runeIndex == len(entry.runeOffsets) {
		return len(entry.content), true
	}
	if runeIndex > len(entry.runeOffsets) {
		return 0, false
	}
	return entry.runeOffsets[runeIndex], true
}

// Keys returns all registered source identifiers, sorted by String().
func (r *Registry) Keys() []SourceID {
	r.mu.RLock()
	keys := make([]SourceID, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	slices.SortFunc(keys, func(a, b SourceID) int {
		return cmp.Compare(a.String(), b.String())
	})
	return keys
}

// Has reports whether sourceID is registered.
func (r *Registry) Has(sourceID SourceID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[sourceID]
	return ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Clear removes all registered sources.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[SourceID]*sourceEntry)
}

// Stats reports memory usage for the registry.
func (r *Registry) Stats() RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats RegistryStats
	stats.SourceCount = len(r.entries)
	for _, entry := range r.entries {
		stats.ContentBytes += int64(len(entry.content))
		stats.IndexBytes += int64(len(entry.lineOffsets) * 8)
		stats.IndexBytes += int64(len(entry.runeOffsets) * 8)
	}
	return stats
}

// computeLineOffsets precomputes the byte offset of each zero-based line
// start. Handles \r\n as a single line break.
func computeLineOffsets(content []byte) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			offsets = append(offsets, i+1)
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				offsets = append(offsets, i+2)
				i++
			} else {
				offsets = append(offsets, i+1)
			}
		}
	}
	return offsets
}

// computeRuneOffsets precomputes the byte offset of each rune.
func computeRuneOffsets(content []byte) []int {
	offsets := make([]int, 0, utf8.RuneCount(content))
	for i := 0; i < len(content); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRune(content[i:])
		i += size
	}
	return offsets
}

// findLine finds the zero-based line number for a byte offset, via binary
// search. byteOffset must be in range [0, len(content)].
func findLine(lineOffsets []int, byteOffset int) int {
	lo, hi := 0, len(lineOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if lineOffsets[mid] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// columnFromByteOffset computes the zero-based column for a byte offset
// within a line, via binary search over precomputed rune offsets.
func columnFromByteOffset(runeOffsets []int, lineStartByte, byteOffset, contentLen int) int {
	if byteOffset <= lineStartByte {
		return 0
	}

	lineStartRune := findRuneIndex(runeOffsets, lineStartByte)
	targetRune := findRuneIndex(runeOffsets, byteOffset)

	if byteOffset >= contentLen && len(runeOffsets) > 0 {
		targetRune = len(runeOffsets)
	}

	return targetRune - lineStartRune
}

// findRuneIndex returns the rune index for a byte offset using binary
// search; floor semantics if byteOffset falls mid-rune.
func findRuneIndex(runeOffsets []int, byteOffset int) int {
	if len(runeOffsets) == 0 {
		return 0
	}
	lo, hi := 0, len(runeOffsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if runeOffsets[mid] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
