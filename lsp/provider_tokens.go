package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/query"
)

// semanticTokenLegend lists the token type strings in query.TokenKind's
// declaration order, so a token's int(Kind) indexes directly into it.
var semanticTokenLegend = []string{"namespace", "type", "property", "variable"}

func semanticTokensLegend() protocol.SemanticTokensLegend {
	return protocol.SemanticTokensLegend{TokenTypes: semanticTokenLegend, TokenModifiers: []string{}}
}

func (s *Server) textDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	sourceID, err := sourceIDFor(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	tokens := query.SemanticTokens(s.workspace.Core().Symbols(), s.workspace.Core().Relationships(), sourceID)
	data := make([]protocol.UInteger, 0, len(tokens)*5)

	prevLine, prevChar := 0, 0
	for _, tok := range tokens {
		start, end := s.workspace.Range(tok.Span)
		line, char := start[0], start[1]
		length := end[1] - char
		if end[0] != line || length < 0 {
			length = 1 // a token never legitimately spans lines; guard against a bad span
		}

		deltaLine := line - prevLine
		deltaChar := char
		if deltaLine == 0 {
			deltaChar = char - prevChar
		}

		data = append(data,
			protocol.UInteger(deltaLine),
			protocol.UInteger(deltaChar),
			protocol.UInteger(length),
			protocol.UInteger(tok.Kind),
			protocol.UInteger(0),
		)
		prevLine, prevChar = line, char
	}

	return &protocol.SemanticTokens{Data: data}, nil
}
