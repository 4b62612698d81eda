package main

import (
	"context"
	"sync"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/parse"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open answer file. answers is nil when content does not
// parse, and err holds the parse error.
type document struct {
	uri       string
	content   string
	version   int32
	answers   *ans.Collection
	positions map[string]parse.Pos
	err       error
}

func newDocumentStore() *documentStore {
	return &documentStore{docs: make(map[string]*document)}
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[string]parse.Pos)
	c, err := parse.ReadXML([]byte(content), parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		answers:   c,
		positions: positions,
		err:       err,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: diagnostics(doc),
	})
	if err != nil {
		s.log.Warn("publish diagnostics", zap.String("uri", doc.uri), zap.Error(err))
	}
}

// diagnostics reports the parse error of doc, if any, at the position it
// carries.
func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	}
	if pos, ok := parse.ErrPos(doc.err); ok {
		line, col := toLSP(pos)
		d.Range = protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		}
	}
	return append(res, d)
}

// toLSP converts a 1-based parse position to 0-based line and character.
func toLSP(p parse.Pos) (uint32, uint32) {
	line, col := p.Line-1, p.Col-1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return uint32(line), uint32(col)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.log.Debug("open", zap.String("uri", doc.uri), zap.Bool("valid", doc.err == nil))
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	doc = s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies one content change. A change with a zero range and
// no range length replaces the whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r == (protocol.Range{}) && change.RangeLength == 0 {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if end < start {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// lineColToOffset returns the byte offset of a 0-based line and character,
// counting characters as runes.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			if currentLine == line {
				return i
			}
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
