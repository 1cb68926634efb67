package spanbuilder_test

import (
	"testing"

	"github.com/antlr4-go/antlr/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysml-tools/semcore/internal/spanbuilder"
	"github.com/sysml-tools/semcore/location"
)

type mockToken struct {
	antlr.Token
	start int
	stop  int
}

func (m *mockToken) GetStart() int { return m.start }
func (m *mockToken) GetStop() int  { return m.stop }

type mockContext struct {
	antlr.ParserRuleContext
	startToken antlr.Token
	stopToken  antlr.Token
}

func (m *mockContext) GetStart() antlr.Token { return m.startToken }
func (m *mockContext) GetStop() antlr.Token  { return m.stopToken }

func registerSource(t *testing.T, reg *location.Registry, content, name string) location.SourceID {
	t.Helper()
	sourceID := location.NewSyntheticSourceID("test://" + name)
	err := reg.Register(sourceID, []byte(content))
	require.NoError(t, err)
	return sourceID
}

func TestNew(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test content", "builder")

	b := spanbuilder.New(sourceID, reg, reg)

	assert.NotNil(t, b)
	assert.Equal(t, reg, b.Registry())
	assert.Equal(t, reg, b.Converter())
}

func TestBuilder_FromToken_Nil(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test", "nil-token")
	b := spanbuilder.New(sourceID, reg, reg)

	result := b.FromToken(nil)

	assert.True(t, result.IsZero())
}

func TestBuilder_FromToken_ASCII(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "hello world", "ascii")
	b := spanbuilder.New(sourceID, reg, reg)

	// Token for "hello" (runes 0-4, bytes 0-4)
	token := &mockToken{start: 0, stop: 4}
	result := b.FromToken(token)

	assert.False(t, result.IsZero())
	assert.Equal(t, sourceID, result.Source)
	assert.Equal(t, 0, result.Start.Line)
	assert.Equal(t, 0, result.Start.Column)
	assert.Equal(t, 0, result.Start.Byte)
	assert.Equal(t, 0, result.End.Line)
	assert.Equal(t, 5, result.End.Column)
	assert.Equal(t, 5, result.End.Byte)
}

func TestBuilder_FromToken_UTF8_TwoByte(t *testing.T) {
	// "café" = c(1) + a(1) + f(1) + é(2) = 5 bytes, 4 runes
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "café", "utf8-2byte")
	b := spanbuilder.New(sourceID, reg, reg)

	// Token for "é" (rune 3, bytes 3-4)
	token := &mockToken{start: 3, stop: 3}
	result := b.FromToken(token)

	assert.False(t, result.IsZero())
	assert.Equal(t, 3, result.Start.Byte)
	assert.Equal(t, 5, result.End.Byte)
	assert.Equal(t, 3, result.Start.Column)
	assert.Equal(t, 4, result.End.Column)
}

func TestBuilder_FromToken_UTF8_ThreeByte(t *testing.T) {
	// "a中b" = a(1) + 中(3) + b(1) = 5 bytes, 3 runes
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "a中b", "utf8-3byte")
	b := spanbuilder.New(sourceID, reg, reg)

	token := &mockToken{start: 1, stop: 1}
	result := b.FromToken(token)

	assert.False(t, result.IsZero())
	assert.Equal(t, 1, result.Start.Byte)
	assert.Equal(t, 4, result.End.Byte)
}

func TestBuilder_FromToken_UTF8_FourByte(t *testing.T) {
	// "a🎉b" = a(1) + 🎉(4) + b(1) = 6 bytes, 3 runes
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "a🎉b", "utf8-4byte")
	b := spanbuilder.New(sourceID, reg, reg)

	token := &mockToken{start: 1, stop: 1}
	result := b.FromToken(token)

	assert.False(t, result.IsZero())
	assert.Equal(t, 1, result.Start.Byte)
	assert.Equal(t, 5, result.End.Byte)
}

func TestBuilder_FromToken_Multiline(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "line1\nline2", "multiline")
	b := spanbuilder.New(sourceID, reg, reg)

	// Token for "line2" (runes 6-10)
	token := &mockToken{start: 6, stop: 10}
	result := b.FromToken(token)

	assert.Equal(t, 1, result.Start.Line)
	assert.Equal(t, 0, result.Start.Column)
	assert.Equal(t, 1, result.End.Line)
}

func TestBuilder_FromContext_Nil(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test", "nil-ctx")
	b := spanbuilder.New(sourceID, reg, reg)

	result := b.FromContext(nil)

	assert.True(t, result.IsZero())
}

func TestBuilder_FromContext_NilStartToken(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test", "nil-start")
	b := spanbuilder.New(sourceID, reg, reg)

	ctx := &mockContext{startToken: nil, stopToken: &mockToken{start: 0, stop: 3}}
	result := b.FromContext(ctx)

	assert.True(t, result.IsZero())
}

func TestBuilder_FromContext_NilStopToken(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test", "nil-stop")
	b := spanbuilder.New(sourceID, reg, reg)

	ctx := &mockContext{
		startToken: &mockToken{start: 0, stop: 3},
		stopToken:  nil,
	}
	result := b.FromContext(ctx)

	assert.False(t, result.IsZero())
	assert.Equal(t, 0, result.Start.Byte)
	assert.Equal(t, 4, result.End.Byte)
}

func TestBuilder_FromContext_StartAndStop(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "hello world", "ctx-range")
	b := spanbuilder.New(sourceID, reg, reg)

	ctx := &mockContext{
		startToken: &mockToken{start: 0, stop: 4},
		stopToken:  &mockToken{start: 6, stop: 10},
	}
	result := b.FromContext(ctx)

	assert.False(t, result.IsZero())
	assert.Equal(t, 0, result.Start.Byte)
	assert.Equal(t, 11, result.End.Byte)
}

func TestBuilder_FromTokens_NilStart(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test", "nil-start-tok")
	b := spanbuilder.New(sourceID, reg, reg)

	result := b.FromTokens(nil, &mockToken{start: 0, stop: 3})

	assert.True(t, result.IsZero())
}

func TestBuilder_FromTokens_NilStop(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "test", "nil-stop-tok")
	b := spanbuilder.New(sourceID, reg, reg)

	result := b.FromTokens(&mockToken{start: 0, stop: 3}, nil)

	assert.False(t, result.IsZero())
	assert.Equal(t, 0, result.Start.Byte)
	assert.Equal(t, 4, result.End.Byte)
}

func TestBuilder_FromTokens_Range(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := registerSource(t, reg, "hello world", "tok-range")
	b := spanbuilder.New(sourceID, reg, reg)

	result := b.FromTokens(
		&mockToken{start: 0, stop: 4},
		&mockToken{start: 6, stop: 10},
	)

	assert.False(t, result.IsZero())
	assert.Equal(t, 0, result.Start.Byte)
	assert.Equal(t, 11, result.End.Byte)
}

func TestBuilder_MustPositionAt_UnknownSource_Panics(t *testing.T) {
	reg := location.NewRegistry()
	unknownID := location.NewSyntheticSourceID("test://unknown")

	assert.Panics(t, func() {
		b := spanbuilder.New(unknownID, reg, reg)
		b.FromToken(&mockToken{start: 0, stop: 0})
	})
}

type mockFailingConverter struct{}

func (m *mockFailingConverter) RuneToByteOffset(_ location.SourceID, _ int) (int, bool) {
	return 0, false
}

func TestBuilder_FromToken_UnknownSource_Panics(t *testing.T) {
	reg := location.NewRegistry()
	sourceID := location.NewSyntheticSourceID("test://unknown")
	failingConverter := &mockFailingConverter{}

	b := spanbuilder.New(sourceID, reg, failingConverter)

	assert.Panics(t, func() {
		b.FromToken(&mockToken{start: 0, stop: 0})
	})
}
