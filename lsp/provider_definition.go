package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	uri := params.TextDocument.URI
	sourceID, pos, ok := s.workspace.DocumentPosition(uri, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	span, ok := query.Definition(s.workspace.Core().Symbols(), sourceID, pos)
	if !ok {
		return nil, nil
	}
	return s.locationFor(span), nil
}

func (s *Server) locationFor(span location.Span) protocol.Location {
	start, end := s.workspace.Range(span)
	return protocol.Location{
		URI: s.workspace.URIFor(span.Source),
		Range: protocol.Range{
			Start: protocol.Position{Line: toUInteger(start[0]), Character: toUInteger(start[1])},
			End:   protocol.Position{Line: toUInteger(end[0]), Character: toUInteger(end[1])},
		},
	}
}
