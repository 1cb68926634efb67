package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentInlayHint(ctx *glsp.Context, params *protocol.InlayHintParams) ([]protocol.InlayHint, error) {
	sourceID, err := sourceIDFor(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}

	hints := query.InlayHints(s.workspace.Core().Symbols(), sourceID)
	out := make([]protocol.InlayHint, 0, len(hints))
	for _, h := range hints {
		_, end := s.workspace.Range(h.Span)
		label := ": " + h.Label
		out = append(out, protocol.InlayHint{
			Position: protocol.Position{Line: toUInteger(end[0]), Character: toUInteger(end[1])},
			Label:    label,
		})
	}
	return out, nil
}
