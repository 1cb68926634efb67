package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	sourceID, err := sourceIDFor(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	file, ok := s.workspace.Core().File(sourceID)
	if !ok {
		return nil, nil
	}

	ranges := query.FoldingRanges(file.Content)
	out := make([]protocol.FoldingRange, 0, len(ranges))
	for _, r := range ranges {
		kind := foldingRangeKind(r.Kind)
		out = append(out, protocol.FoldingRange{
			StartLine: protocol.UInteger(r.StartLine),
			EndLine:   protocol.UInteger(r.EndLine),
			Kind:      &kind,
		})
	}
	return out, nil
}

func foldingRangeKind(kind query.FoldingKind) protocol.FoldingRangeKind {
	if kind == query.FoldingComment {
		return protocol.FoldingRangeKindComment
	}
	return protocol.FoldingRangeKindRegion
}
