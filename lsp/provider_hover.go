package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	uri := params.TextDocument.URI
	sourceID, pos, ok := s.workspace.DocumentPosition(uri, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	info, ok := query.Hover(s.workspace.Core().Symbols(), sourceID, pos)
	if !ok {
		return nil, nil
	}

	start, end := s.workspace.Range(info.Symbol.DeclarationSpan)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: info.Content,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: toUInteger(start[0]), Character: toUInteger(start[1])},
			End:   protocol.Position{Line: toUInteger(end[0]), Character: toUInteger(end[1])},
		},
	}, nil
}
