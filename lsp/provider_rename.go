package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/sysml-tools/semcore/query"
)

func (s *Server) textDocumentRename(ctx *glsp.Context, params *protocol.RenameParams) (*protocol.WorkspaceEdit, error) {
	uri := params.TextDocument.URI
	sourceID, pos, ok := s.workspace.DocumentPosition(uri, int(params.Position.Line), int(params.Position.Character))
	if !ok {
		return nil, nil
	}

	edits, ok := query.RenameEdits(s.workspace.Core().Symbols(), sourceID, pos, params.NewName)
	if !ok {
		return nil, nil
	}

	changes := make(map[string][]protocol.TextEdit, len(edits))
	for file, fileEdits := range edits {
		textEdits := make([]protocol.TextEdit, 0, len(fileEdits))
		for _, edit := range fileEdits {
			start, end := s.workspace.Range(edit.Span)
			textEdits = append(textEdits, protocol.TextEdit{
				Range: protocol.Range{
					Start: protocol.Position{Line: toUInteger(start[0]), Character: toUInteger(start[1])},
					End:   protocol.Position{Line: toUInteger(end[0]), Character: toUInteger(end[1])},
				},
				NewText: edit.NewText,
			})
		}
		changes[s.workspace.URIFor(file)] = textEdits
	}

	return &protocol.WorkspaceEdit{Changes: changes}, nil
}
