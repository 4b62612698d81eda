package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"
)

const (
	elemAnswerSet = "AnswerSet"
	elemAnswer    = "Answer"
	elemRepeat    = "RptValue"
	elemSelection = "SelValue"
)

var bom = []byte("\xef\xbb\xbf")

// ReadXML reads an <AnswerSet> answer file. Any error aborts the whole read
// and no collection is returned. Errors wrap ErrParse and carry the
// position at which they were detected.
func ReadXML(d []byte, opts ...ParseOption) (*ans.Collection, error) {
	return readXML(d, newParseOpts(opts))
}

func readXML(d []byte, opts *parseOpts) (*ans.Collection, error) {
	r := &xmlReader{
		dec:  xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(d, bom))),
		opts: opts,
	}
	res, err := r.readDoc()
	if err != nil {
		if debug.Parse() {
			debug.Logf("xml read failed: %v", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("xml read %v", res)
	}
	return res, nil
}

type xmlReader struct {
	dec  *xml.Decoder
	opts *parseOpts

	// kind of the first leaf of the answer being read
	typ ans.ValueType
}

func (r *xmlReader) pos() Pos {
	line, col := r.dec.InputPos()
	return Pos{Line: line, Col: col}
}

func (r *xmlReader) errorf(base error, format string, args ...any) error {
	return fmt.Errorf("%w: %s (%s)", base, fmt.Sprintf(format, args...), r.pos())
}

// next returns the next start element, end element or non blank character
// data. io.EOF is returned as is.
func (r *xmlReader) next() (xml.Token, error) {
	for {
		tok, err := r.dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, err
			}
			return nil, r.errorf(ErrParse, "%v", err)
		}
		switch x := tok.(type) {
		case xml.StartElement, xml.EndElement:
			return x, nil
		case xml.CharData:
			if len(bytes.TrimSpace(x)) == 0 {
				continue
			}
			return x.Copy(), nil
		}
	}
}

func (r *xmlReader) readDoc() (*ans.Collection, error) {
	tok, err := r.next()
	if err == io.EOF {
		return nil, r.errorf(ErrParse, "no %s element", elemAnswerSet)
	}
	if err != nil {
		return nil, err
	}
	start, ok := tok.(xml.StartElement)
	if !ok || start.Name.Local != elemAnswerSet {
		return nil, r.errorf(ErrUnknownElem, "expected <%s>, got %s", elemAnswerSet, describe(tok))
	}
	res := ans.New()
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "title":
			res.Title = attr.Value
		case "version":
			res.Version = attr.Value
		case "useMangledNames":
			b, err := r.boolAttr(attr)
			if err != nil {
				return nil, err
			}
			res.UseMangledNames = b
		}
	}
	for {
		tok, err := r.next()
		if err == io.EOF {
			return nil, r.errorf(ErrParse, "unterminated <%s>", elemAnswerSet)
		}
		if err != nil {
			return nil, err
		}
		switch x := tok.(type) {
		case xml.EndElement:
			return res, r.trailer()
		case xml.StartElement:
			if x.Name.Local != elemAnswer {
				return nil, r.errorf(ErrUnknownElem, "<%s> in <%s>", x.Name.Local, elemAnswerSet)
			}
			a, err := r.readAnswer(x)
			if err != nil {
				return nil, err
			}
			if _, dup := res.TryGetAnswer(a.Name()); dup {
				return nil, r.errorf(ErrDuplicateName, "%q", a.Name())
			}
			res.Add(a)
		default:
			return nil, r.errorf(ErrParse, "unexpected %s in <%s>", describe(tok), elemAnswerSet)
		}
	}
}

// trailer checks that nothing but blanks, comments and processing
// instructions follows the root element.
func (r *xmlReader) trailer() error {
	tok, err := r.next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	return r.errorf(ErrParse, "unexpected %s after </%s>", describe(tok), elemAnswerSet)
}

func (r *xmlReader) readAnswer(start xml.StartElement) (*ans.Answer, error) {
	var (
		name         string
		hasName      bool
		save, extend = true, true
	)
	for _, attr := range start.Attr {
		var err error
		switch attr.Name.Local {
		case "name":
			name, hasName = attr.Value, true
		case "save":
			save, err = r.boolAttr(attr)
		case "userExtendible":
			extend, err = r.boolAttr(attr)
		}
		if err != nil {
			return nil, err
		}
	}
	if !hasName || name == "" {
		return nil, r.errorf(ErrBadAttr, "<%s> without name", elemAnswer)
	}
	if r.opts.positions != nil {
		r.opts.positions[ans.FoldName(name)] = r.pos()
	}
	tok, err := r.next()
	if err != nil {
		return nil, r.eof(err, elemAnswer)
	}
	vstart, ok := tok.(xml.StartElement)
	if !ok {
		return nil, r.errorf(ErrParse, "answer %q: expected a value element, got %s", name, describe(tok))
	}
	r.typ = ans.UnknownType
	root, err := r.readNode(vstart)
	if err != nil {
		return nil, fmt.Errorf("answer %q: %w", name, err)
	}
	tok, err = r.next()
	if err != nil {
		return nil, r.eof(err, elemAnswer)
	}
	if _, ok := tok.(xml.EndElement); !ok {
		return nil, r.errorf(ErrParse, "answer %q: more than one value element", name)
	}
	a := ans.NewAnswerFromNode(name, r.typ, root)
	a.Save = save
	a.UserExtendible = extend
	return a, nil
}

func (r *xmlReader) readNode(start xml.StartElement) (*ans.Node, error) {
	if start.Name.Local == elemRepeat {
		return r.readRepeat()
	}
	t, ok := ans.TypeOfElement(start.Name.Local)
	if !ok {
		return nil, r.errorf(ErrUnknownElem, "<%s>", start.Name.Local)
	}
	if r.typ == ans.UnknownType {
		r.typ = t
	}
	v, err := r.readLeaf(t, start)
	if err != nil {
		return nil, err
	}
	return ans.NewLeaf(v), nil
}

// readRepeat reads the children of a <RptValue>. The self closed and the
// empty paired forms both give a repeat with no children.
func (r *xmlReader) readRepeat() (*ans.Node, error) {
	var children []*ans.Node
	for {
		tok, err := r.next()
		if err != nil {
			return nil, r.eof(err, elemRepeat)
		}
		switch x := tok.(type) {
		case xml.EndElement:
			return ans.NewRepeat(children...), nil
		case xml.StartElement:
			c, err := r.readNode(x)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		default:
			return nil, r.errorf(ErrParse, "unexpected %s in <%s>", describe(tok), elemRepeat)
		}
	}
}

func (r *xmlReader) readLeaf(t ans.ValueType, start xml.StartElement) (ans.Value, error) {
	var unans, locked bool
	for _, attr := range start.Attr {
		var (
			b   bool
			err error
		)
		switch attr.Name.Local {
		case "unans":
			b, err = r.boolAttr(attr)
			unans = b
		case "userModifiable":
			b, err = r.boolAttr(attr)
			locked = !b
		}
		if err != nil {
			return nil, err
		}
	}
	var (
		body strings.Builder
		sels []string
	)
	for done := false; !done; {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, r.eof(err, start.Name.Local)
		}
		switch x := tok.(type) {
		case xml.CharData:
			body.Write(x)
		case xml.EndElement:
			done = true
		case xml.StartElement:
			if t != ans.MultipleChoiceType || x.Name.Local != elemSelection {
				return nil, r.errorf(ErrUnknownElem, "<%s> in <%s>", x.Name.Local, start.Name.Local)
			}
			s, err := r.readText(x)
			if err != nil {
				return nil, err
			}
			sels = append(sels, s)
		}
	}
	if unans {
		return ans.WithLocked(ans.Unanswered(t), locked), nil
	}
	var (
		v   ans.Value
		err error
	)
	switch {
	case t == ans.MultipleChoiceType:
		if strings.TrimSpace(body.String()) != "" {
			return nil, r.errorf(ErrParse, "text in <%s>", start.Name.Local)
		}
		if len(sels) == 0 {
			v = ans.Unanswered(t)
		} else {
			v = ans.MultipleChoice(sels...)
		}
	case t == ans.TextType:
		v = ans.Text(body.String())
	case strings.TrimSpace(body.String()) == "":
		v = ans.Unanswered(t)
	default:
		v, err = ans.ParseValue(t, body.String())
		if err != nil {
			return nil, r.errorf(ErrParse, "<%s>: %v", start.Name.Local, err)
		}
	}
	return ans.WithLocked(v, locked), nil
}

// readText reads character data up to the end of the current element.
func (r *xmlReader) readText(start xml.StartElement) (string, error) {
	var sb strings.Builder
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return "", r.eof(err, start.Name.Local)
		}
		switch x := tok.(type) {
		case xml.CharData:
			sb.Write(x)
		case xml.EndElement:
			return sb.String(), nil
		case xml.StartElement:
			return "", r.errorf(ErrUnknownElem, "<%s> in <%s>", x.Name.Local, start.Name.Local)
		}
	}
}

func (r *xmlReader) boolAttr(attr xml.Attr) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(attr.Value))
	if err != nil {
		return false, r.errorf(ErrBadAttr, "%s=%q", attr.Name.Local, attr.Value)
	}
	return b, nil
}

func (r *xmlReader) eof(err error, elem string) error {
	if err == io.EOF {
		return r.errorf(ErrParse, "unterminated <%s>", elem)
	}
	if errors.Is(err, ErrParse) {
		return err
	}
	return r.errorf(ErrParse, "%v", err)
}

func describe(tok xml.Token) string {
	switch x := tok.(type) {
	case xml.StartElement:
		return "<" + x.Name.Local + ">"
	case xml.EndElement:
		return "</" + x.Name.Local + ">"
	case xml.CharData:
		s := strings.TrimSpace(string(x))
		if len(s) > 20 {
			s = s[:20] + "..."
		}
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%T", tok)
}
