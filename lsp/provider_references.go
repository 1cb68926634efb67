package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentReferences(ctx *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	uri := params.TextDocument.URI
	sourceID, pos, ok := s.workspace.DocumentPosition(uri, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	spans, ok := query.FindReferences(s.workspace.Core().Symbols(), sourceID, pos)
	if !ok {
		return nil, nil
	}

	out := make([]protocol.Location, 0, len(spans))
	for _, span := range spans {
		out = append(out, s.locationFor(span))
	}
	return out, nil
}
