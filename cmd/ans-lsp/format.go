package main

import (
	"bytes"
	"context"

	"github.com/hdanswers/answerset/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.answers == nil {
		return nil, nil
	}
	indent := int(params.Options.TabSize)
	if indent <= 0 {
		indent = 2
	}
	var buf bytes.Buffer
	if err := encode.WriteXML(doc.answers, &buf, encode.Indent(indent)); err != nil {
		return nil, nil
	}
	return formatEdits(doc.content, buf.String()), nil
}

// formatEdits returns a single edit replacing content with formatted, or
// none when they are equal.
func formatEdits(content, formatted string) []protocol.TextEdit {
	if formatted == content {
		return []protocol.TextEdit{}
	}
	lines := bytes.Count([]byte(content), []byte("\n"))
	if len(content) > 0 && content[len(content)-1] != '\n' {
		lines++
	}
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
	}
}
