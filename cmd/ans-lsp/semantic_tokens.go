package main

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/encode"

	"go.lsp.dev/protocol"
)

var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenVariable,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
		protocol.SemanticTokenModifierReadonly,
	}

	tagRe  = regexp.MustCompile(`<(/?)([A-Za-z]+)([^>]*)>`)
	attrRe = regexp.MustCompile(`([A-Za-z]+)\s*=\s*"([^"]*)"`)
)

// tagColor is the color attribute given to element names.
const tagColor = encode.SepColor

func mapColorToSemanticTokenType(t ans.ValueType, attr encode.ColorAttr) protocol.SemanticTokenTypes {
	switch attr {
	case encode.NameColor:
		return protocol.SemanticTokenVariable
	case encode.IndexColor:
		return protocol.SemanticTokenProperty
	case encode.SepColor:
		return protocol.SemanticTokenKeyword
	case encode.UnansweredColor:
		return protocol.SemanticTokenOperator
	}
	switch t {
	case ans.NumberType:
		return protocol.SemanticTokenNumber
	case ans.TrueFalseType:
		return protocol.SemanticTokenKeyword
	}
	return protocol.SemanticTokenString
}

type tokenInfo struct {
	line, character, length uint32
	tokenType               protocol.SemanticTokenTypes
	definition, readonly    bool
}

// collectSemanticTokens scans doc line by line and returns the LSP encoding
// of its tokens: element names, attributes, answer names and values.
func collectSemanticTokens(content string) []uint32 {
	var infos []tokenInfo
	for ln, line := range strings.Split(content, "\n") {
		infos = append(infos, lineTokens(uint32(ln), line)...)
	}
	typeIdx := map[protocol.SemanticTokenTypes]uint32{}
	for i, t := range tokenTypes {
		typeIdx[t] = uint32(i)
	}
	tokens := make([]uint32, 0, len(infos)*5)
	var prevLine, prevChar uint32
	for _, ti := range infos {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		var mods uint32
		if ti.definition {
			mods |= 1
		}
		if ti.readonly {
			mods |= 2
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, typeIdx[ti.tokenType], mods)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func lineTokens(ln uint32, line string) []tokenInfo {
	var (
		res []tokenInfo
		// open is the element whose content follows the last tag
		open string
		last int
	)
	add := func(from, to int, tt protocol.SemanticTokenTypes) *tokenInfo {
		res = append(res, tokenInfo{
			line:      ln,
			character: uint32(utf8.RuneCountInString(line[:from])),
			length:    uint32(utf8.RuneCountInString(line[from:to])),
			tokenType: tt,
		})
		return &res[len(res)-1]
	}
	for _, m := range tagRe.FindAllStringSubmatchIndex(line, -1) {
		if open != "" && strings.TrimSpace(line[last:m[0]]) != "" {
			t, _ := ans.TypeOfElement(open)
			add(last, m[0], mapColorToSemanticTokenType(t, encode.ValueColor))
		}
		closing := m[3] > m[2]
		name := line[m[4]:m[5]]
		add(m[4], m[5], mapColorToSemanticTokenType(ans.UnknownType, tagColor))
		attrs := line[m[6]:m[7]]
		for _, a := range attrRe.FindAllStringSubmatchIndex(attrs, -1) {
			aname := attrs[a[2]:a[3]]
			add(m[6]+a[2], m[6]+a[3], mapColorToSemanticTokenType(ans.UnknownType, encode.IndexColor))
			if a[5] == a[4] {
				continue
			}
			switch {
			case name == "Answer" && aname == "name":
				add(m[6]+a[4], m[6]+a[5], mapColorToSemanticTokenType(ans.UnknownType, encode.NameColor)).definition = true
			case aname == "unans" || aname == "userModifiable":
				add(m[6]+a[4], m[6]+a[5], mapColorToSemanticTokenType(ans.UnknownType, encode.UnansweredColor)).readonly = aname == "userModifiable"
			default:
				add(m[6]+a[4], m[6]+a[5], protocol.SemanticTokenString)
			}
		}
		selfClosed := strings.HasSuffix(strings.TrimSpace(attrs), "/")
		switch {
		case closing || selfClosed:
			open = ""
		case name == "SelValue":
			open = ans.MultipleChoiceType.Element()
		default:
			open = name
		}
		last = m[1]
	}
	return res
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc.content)}, nil
}

// SemanticTokensRange returns the tokens of the whole document.
func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: collectSemanticTokens(doc.content)}, nil
}
