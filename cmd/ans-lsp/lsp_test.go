package main

import (
	"strings"
	"testing"

	"go.lsp.dev/protocol"
)

const goodDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<AnswerSet title="" version="1.1" useMangledNames="false">
  <Answer name="Client Name">
    <TextValue>Ann</TextValue>
  </Answer>
  <Answer name="Kids">
    <RptValue>
      <NumValue>1</NumValue>
      <NumValue>2</NumValue>
    </RptValue>
  </Answer>
</AnswerSet>
`

func TestDiagnosticsValid(t *testing.T) {
	doc := newDocument("file:///a.anx", goodDoc, 1)
	if doc.err != nil {
		t.Fatal(doc.err)
	}
	if got := diagnostics(doc); len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestDiagnosticsPosition(t *testing.T) {
	content := "<AnswerSet>\n  <Answer name=\"x\">\n    <Bogus/>\n  </Answer>\n</AnswerSet>\n"
	doc := newDocument("file:///b.anx", content, 1)
	got := diagnostics(doc)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics", len(got))
	}
	if got[0].Range.Start.Line != 2 {
		t.Errorf("line = %d, want 2", got[0].Range.Start.Line)
	}
	if got[0].Severity != protocol.DiagnosticSeverityError {
		t.Errorf("severity = %v", got[0].Severity)
	}
}

func TestHover(t *testing.T) {
	doc := newDocument("file:///a.anx", goodDoc, 1)
	a := answerAtLine(doc, 5)
	if a == nil || a.Name() != "Kids" {
		t.Fatalf("got %v", a)
	}
	text := buildHoverText(a)
	for _, want := range []string{"`Kids`", "Number", "**Repeated:** true", "**Count:** 2"} {
		if !strings.Contains(text, want) {
			t.Errorf("hover lacks %q:\n%s", want, text)
		}
	}
	if a := answerAtLine(doc, 3); a != nil {
		t.Errorf("value line hovered %s", a.Name())
	}
	if text := buildHoverText(answerAtLine(doc, 2)); !strings.Contains(text, "**Value:** `Ann`") {
		t.Errorf("got %s", text)
	}
}

func TestApplyChange(t *testing.T) {
	content := "ab\ncd\nef"
	got := applyChange(content, protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 1},
			End:   protocol.Position{Line: 2, Character: 0},
		},
		Text: "X",
	})
	if got != "ab\ncXef" {
		t.Errorf("got %q", got)
	}
	if got := applyChange(content, protocol.TextDocumentContentChangeEvent{Text: "new"}); got != "new" {
		t.Errorf("full replacement gave %q", got)
	}
}

func TestLineColToOffset(t *testing.T) {
	content := "héllo\nwörld"
	for _, c := range []struct {
		line, col, want int
	}{
		{0, 0, 0},
		{0, 2, 3},
		{0, 99, 6},
		{1, 1, 8},
		{5, 0, len(content)},
	} {
		if got := lineColToOffset(content, c.line, c.col); got != c.want {
			t.Errorf("(%d, %d) = %d, want %d", c.line, c.col, got, c.want)
		}
	}
}

func TestFormatEdits(t *testing.T) {
	if edits := formatEdits(goodDoc, goodDoc); len(edits) != 0 {
		t.Errorf("got %v", edits)
	}
	edits := formatEdits("<AnswerSet/>", goodDoc)
	if len(edits) != 1 || edits[0].Range.End.Line != 1 {
		t.Errorf("got %v", edits)
	}
}

func TestCompletions(t *testing.T) {
	got := completions("    <Num")
	if len(got) != 1 || got[0].Label != "NumValue" {
		t.Errorf("got %v", got)
	}
	if got := completions("    </"); len(got) != 9 {
		t.Errorf("got %d items", len(got))
	}
	if got := completions(`<Answer name="x">`); got != nil {
		t.Errorf("completed after a closed tag: %v", got)
	}
}

func TestSemanticTokens(t *testing.T) {
	toks := collectSemanticTokens(`  <Answer name="Kids">`)
	// element, attribute name, answer name
	if len(toks) != 15 {
		t.Fatalf("got %v", toks)
	}
	if toks[1] != 3 || toks[2] != 6 {
		t.Errorf("element token at %d len %d", toks[1], toks[2])
	}
	if toks[14] != 1 {
		t.Errorf("answer name is not a definition: %v", toks[10:])
	}
	toks = collectSemanticTokens("<NumValue>12</NumValue>")
	if len(toks) != 15 || tokenTypes[toks[8]] != protocol.SemanticTokenNumber {
		t.Errorf("got %v", toks)
	}
}
