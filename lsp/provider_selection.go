package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/location"
	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentSelectionRange(ctx *glsp.Context, params *protocol.SelectionRangeParams) ([]protocol.SelectionRange, error) {
	uri := params.TextDocument.URI
	sourceID, err := sourceIDFor(uri)
	if err != nil {
		return nil, nil
	}
	file, ok := s.workspace.Core().File(sourceID)
	if !ok {
		return nil, nil
	}

	out := make([]protocol.SelectionRange, 0, len(params.Positions))
	for _, p := range params.Positions {
		_, pos, ok := s.workspace.DocumentPosition(uri, int(p.Line), int(p.Character))
		if !ok {
			continue
		}
		chain := query.SelectionRanges(file.Content, pos)
		out = append(out, selectionChainToProtocol(s, chain))
	}
	return out, nil
}

// selectionChainToProtocol links chain (smallest-first) into the nested
// protocol.SelectionRange the client expects (each entry's Parent is the
// next-larger enclosing range).
func selectionChainToProtocol(s *Server, chain []location.Span) protocol.SelectionRange {
	var parent *protocol.SelectionRange
	for _, span := range chain {
		start, end := s.workspace.Range(span)
		current := protocol.SelectionRange{
			Range: protocol.Range{
				Start: protocol.Position{Line: toUInteger(start[0]), Character: toUInteger(start[1])},
				End:   protocol.Position{Line: toUInteger(end[0]), Character: toUInteger(end[1])},
			},
			Parent: parent,
		}
		parent = &current
	}
	if parent == nil {
		return protocol.SelectionRange{}
	}
	return *parent
}
