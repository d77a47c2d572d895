package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/signadot/jot-format/jot/encode"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := encode.Encode(doc.node, &buf, encode.EncodePretty(true)); err != nil {
		return nil, nil
	}
	buf.WriteString("\n")

	formatted := buf.String()
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// a single edit replacing the entire document
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
