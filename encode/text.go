package encode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/hdanswers/answerset/ans"
)

const unansweredText = "<unanswered>"

// writeText lists one line per leaf and per empty repeat:
//
//	Name: value
//	Name[0][1]: <unanswered>
//	Name[1]: []
func writeText(c *ans.Collection, w io.Writer, es *EncState) error {
	bw := bufio.NewWriter(w)
	for name, a := range c.All() {
		t := a.Type()
		a.Root().Walk(func(path []int, n *ans.Node) error {
			if n.IsRepeat() && n.Len() != 0 {
				return nil
			}
			bw.WriteString(es.Color(t, NameColor, name))
			for _, i := range path {
				bw.WriteString(es.Color(t, SepColor, "["))
				bw.WriteString(es.Color(t, IndexColor, strconv.Itoa(i)))
				bw.WriteString(es.Color(t, SepColor, "]"))
			}
			bw.WriteString(es.Color(t, SepColor, ":"))
			bw.WriteString(" ")
			bw.WriteString(TextValue(n, t, es.Color))
			bw.WriteString("\n")
			return nil
		})
	}
	return bw.Flush()
}

// TextValue renders a leaf or an empty repeat the way the text view does.
// color may be nil.
func TextValue(n *ans.Node, t ans.ValueType, color func(ans.ValueType, ColorAttr, string) string) string {
	if color == nil {
		color = func(_ ans.ValueType, _ ColorAttr, s string) string { return s }
	}
	if n == nil {
		return color(t, UnansweredColor, unansweredText)
	}
	if n.IsRepeat() {
		return color(t, SepColor, "[]")
	}
	v := n.Value()
	if v == nil || !v.IsAnswered() {
		return color(t, UnansweredColor, unansweredText)
	}
	s := v.String()
	if strings.ContainsAny(s, "\n\r\t") || (v.Type() == ans.TextType && strings.TrimSpace(s) != s) || s == "" {
		s = strconv.Quote(s)
	}
	res := color(v.Type(), ValueColor, s)
	if !v.UserModifiable() {
		res += " " + color(t, UnansweredColor, "(locked)")
	}
	return res
}
