package main

import (
	"context"
	"strings"

	"github.com/hdanswers/answerset/ans"

	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	prefix := linePrefix(doc.content, int(params.Position.Line), int(params.Position.Character))
	return &protocol.CompletionList{Items: completions(prefix)}, nil
}

// completions offers element names after an open "<" or "</".
func completions(prefix string) []protocol.CompletionItem {
	i := strings.LastIndexByte(prefix, '<')
	if i < 0 || strings.ContainsAny(prefix[i:], "> ") {
		return nil
	}
	typed := strings.TrimPrefix(prefix[i+1:], "/")
	var res []protocol.CompletionItem
	for _, el := range elements() {
		if !strings.HasPrefix(el.name, typed) {
			continue
		}
		res = append(res, protocol.CompletionItem{
			Label:  el.name,
			Kind:   protocol.CompletionItemKindKeyword,
			Detail: el.detail,
		})
	}
	return res
}

type element struct {
	name, detail string
}

func elements() []element {
	res := []element{
		{"AnswerSet", "answer file root"},
		{"Answer", "named answer"},
		{"RptValue", "repeated values"},
	}
	for _, t := range ans.Types() {
		res = append(res, element{t.Element(), t.String() + " value"})
	}
	return append(res, element{"SelValue", "selected choice"})
}

func linePrefix(content string, line, col int) string {
	start := lineColToOffset(content, line, 0)
	end := lineColToOffset(content, line, col)
	if end < start {
		return ""
	}
	return content[start:end]
}
