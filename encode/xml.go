package encode

import (
	"bufio"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hdanswers/answerset/ans"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// ErrXMLText reports a name or value that XML 1.0 cannot carry: invalid
// UTF-8 or a character outside the XML character range.
var ErrXMLText = errors.New("text not representable in XML")

type xmlWriter struct {
	w     *bufio.Writer
	es    *EncState
	depth int
	// kind written for placeholder leaves of the current answer
	typ ans.ValueType
	// answer being written, for errors
	name string
	err  error
}

func writeXML(c *ans.Collection, w io.Writer, es *EncState) error {
	xw := &xmlWriter{w: bufio.NewWriter(w), es: es}
	xw.w.WriteString(xmlHeader)
	xw.nl()
	xw.w.WriteString("<AnswerSet")
	xw.attr("title", c.Title)
	xw.attr("version", c.Version)
	xw.attr("useMangledNames", strconv.FormatBool(c.UseMangledNames))
	xw.w.WriteString(">")
	xw.depth++
	for _, a := range c.All() {
		xw.answer(a)
		if xw.err != nil {
			return xw.err
		}
	}
	xw.depth--
	xw.nl()
	xw.w.WriteString("</AnswerSet>")
	if !es.wire {
		xw.w.WriteString("\n")
	}
	if xw.err != nil {
		return xw.err
	}
	return xw.w.Flush()
}

func (xw *xmlWriter) answer(a *ans.Answer) {
	xw.nl()
	xw.name = a.Name()
	xw.w.WriteString("<Answer")
	xw.attr("name", a.Name())
	if !a.Save {
		xw.attr("save", "false")
	}
	if !a.UserExtendible {
		xw.attr("userExtendible", "false")
	}
	xw.w.WriteString(">")
	xw.typ = a.Type()
	if xw.typ == ans.UnknownType {
		xw.typ = ans.TextType
	}
	xw.depth++
	xw.node(a.Root())
	xw.depth--
	xw.nl()
	xw.w.WriteString("</Answer>")
}

func (xw *xmlWriter) node(n *ans.Node) {
	xw.nl()
	if n.IsLeaf() {
		xw.leaf(n.Value())
		return
	}
	if n.Len() == 0 {
		xw.w.WriteString("<RptValue></RptValue>")
		return
	}
	xw.w.WriteString("<RptValue>")
	xw.depth++
	for _, c := range n.Children() {
		xw.node(c)
	}
	xw.depth--
	xw.nl()
	xw.w.WriteString("</RptValue>")
}

func (xw *xmlWriter) leaf(v ans.Value) {
	if v == nil {
		v = ans.Unanswered(xw.typ)
	}
	elem := v.Type().Element()
	xw.w.WriteString("<" + elem)
	if !v.UserModifiable() {
		xw.attr("userModifiable", "false")
	}
	if !v.IsAnswered() {
		xw.attr("unans", "true")
		xw.w.WriteString("/>")
		return
	}
	xw.w.WriteString(">")
	if mc, ok := v.(ans.MultipleChoiceValue); ok {
		for _, s := range mc.Choices() {
			xw.w.WriteString("<SelValue>")
			xw.text(s)
			xw.w.WriteString("</SelValue>")
		}
	} else {
		xw.text(v.String())
	}
	xw.w.WriteString("</" + elem + ">")
}

func (xw *xmlWriter) attr(name, value string) {
	xw.w.WriteString(" " + name + `="`)
	xw.text(value)
	xw.w.WriteString(`"`)
}

// text escapes s, recording an error instead of letting xml.EscapeText
// substitute U+FFFD for characters XML cannot hold.
func (xw *xmlWriter) text(s string) {
	if xw.err != nil {
		return
	}
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				xw.err = xw.textErr(s, fmt.Sprintf("invalid UTF-8 at byte %d", i))
				return
			}
		}
		if !isXMLChar(r) {
			xw.err = xw.textErr(s, fmt.Sprintf("character %U at byte %d", r, i))
			return
		}
	}
	xml.EscapeText(xw.w, []byte(s))
}

func (xw *xmlWriter) textErr(s, why string) error {
	if xw.name == "" {
		return fmt.Errorf("%w: %q: %s", ErrXMLText, s, why)
	}
	return fmt.Errorf("%w: answer %q: %q: %s", ErrXMLText, xw.name, s, why)
}

func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	default:
		return r >= 0x10000 && r <= 0x10FFFF
	}
}

func (xw *xmlWriter) nl() {
	if xw.es.wire {
		return
	}
	xw.w.WriteString("\n")
	xw.w.WriteString(strings.Repeat(" ", xw.depth*xw.es.indent))
}
