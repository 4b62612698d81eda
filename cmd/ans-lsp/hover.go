package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/encode"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.answers == nil {
		return nil, nil
	}
	a := answerAtLine(doc, int(params.Position.Line))
	if a == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(a),
		},
	}, nil
}

// answerAtLine finds the answer whose <Answer> start tag ends on the 0-based
// line.
func answerAtLine(doc *document, line int) *ans.Answer {
	for key, pos := range doc.positions {
		if pos.Line-1 != line {
			continue
		}
		if a, ok := doc.answers.TryGetAnswer(key); ok {
			return a
		}
	}
	return nil
}

func buildHoverText(a *ans.Answer) string {
	n, _ := a.GetChildCount()
	parts := []string{
		fmt.Sprintf("**Answer:** `%s`", a.Name()),
		fmt.Sprintf("**Type:** %s", a.Type()),
		fmt.Sprintf("**Repeated:** %t", a.IsRepeated()),
		fmt.Sprintf("**Answered:** %t", a.Answered()),
	}
	if a.IsRepeated() {
		parts = append(parts, fmt.Sprintf("**Count:** %d", n))
	} else {
		v, _ := a.Value()
		var leaf *ans.Node
		if v != nil {
			leaf = ans.NewLeaf(v)
		}
		val := encode.TextValue(leaf, a.Type(), nil)
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	}
	if !a.Save {
		parts = append(parts, "not saved")
	}
	if !a.UserExtendible {
		parts = append(parts, "not user extendible")
	}
	return strings.Join(parts, "\n\n")
}
