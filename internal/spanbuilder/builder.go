// Package spanbuilder converts ANTLR's rune-indexed token positions into
// byte-indexed location.Span values.
package spanbuilder

import (
	"fmt"

	"github.com/antlr4-go/antlr/v4"

	"github.com/sysml-tools/semcore/location"
)

// Builder creates location.Span values from ANTLR tokens and parser rule
// contexts for a single source file.
type Builder struct {
	sourceID  location.SourceID
	registry  location.PositionRegistry
	converter location.RuneOffsetConverter
}

// New creates a Builder for the given source, backed by registry for
// byte-to-Position conversion and converter for rune-to-byte conversion.
func New(sourceID location.SourceID, registry location.PositionRegistry, converter location.RuneOffsetConverter) *Builder {
	return &Builder{sourceID: sourceID, registry: registry, converter: converter}
}

// FromToken creates a Span from a single ANTLR token.
func (b *Builder) FromToken(token antlr.Token) location.Span {
	if token == nil {
		return location.Span{}
	}
	startRune := token.GetStart()
	endRune := token.GetStop() + 1
	return b.fromRuneOffsets(startRune, endRune)
}

// FromContext creates a Span covering an entire parser rule context.
func (b *Builder) FromContext(ctx antlr.ParserRuleContext) location.Span {
	if ctx == nil {
		return location.Span{}
	}
	start := ctx.GetStart()
	if start == nil {
		return location.Span{}
	}
	stop := ctx.GetStop()

	startRune := start.GetStart()
	endRune := start.GetStop() + 1
	if stop != nil {
		endRune = stop.GetStop() + 1
	}
	return b.fromRuneOffsets(startRune, endRune)
}

// FromTokens creates a Span covering a range of tokens, start through stop
// inclusive. If stop is nil, the span covers only start.
func (b *Builder) FromTokens(start, stop antlr.Token) location.Span {
	if start == nil {
		return location.Span{}
	}
	startRune := start.GetStart()
	endRune := start.GetStop() + 1
	if stop != nil {
		endRune = stop.GetStop() + 1
	}
	return b.fromRuneOffsets(startRune, endRune)
}

func (b *Builder) fromRuneOffsets(startRune, endRune int) location.Span {
	startByte := mustRuneToByteOffset(b.converter, b.sourceID, startRune)
	endByte := mustRuneToByteOffset(b.converter, b.sourceID, endRune)

	startPos := mustPositionAt(b.registry, b.sourceID, startByte)
	endPos := mustPositionAt(b.registry, b.sourceID, endByte)

	return location.Span{Source: b.sourceID, Start: startPos, End: endPos}
}

// mustRuneToByteOffset converts a rune offset to a byte offset, panicking if
// the source is unregistered. Every rune offset handed to a Builder
// originates from a token scanned over content already registered for this
// sourceID, so a failed conversion here is a wiring bug, not bad input.
func mustRuneToByteOffset(conv location.RuneOffsetConverter, src location.SourceID, runeOffset int) int {
	byteOffset, ok := conv.RuneToByteOffset(src, runeOffset)
	if !ok {
		panic(fmt.Sprintf("spanbuilder: RuneToByteOffset(%s, %d): unknown source", src, runeOffset))
	}
	return byteOffset
}

func mustPositionAt(reg location.PositionRegistry, src location.SourceID, byteOffset int) location.Position {
	pos := reg.PositionAt(src, byteOffset)
	if !pos.IsKnown() {
		panic(fmt.Sprintf("spanbuilder: PositionAt(%s, %d): unknown Position", src, byteOffset))
	}
	return pos
}

// Registry returns the underlying PositionRegistry.
func (b *Builder) Registry() location.PositionRegistry { return b.registry }

// Converter returns the underlying RuneOffsetConverter.
func (b *Builder) Converter() location.RuneOffsetConverter { return b.converter }
