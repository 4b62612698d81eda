package libdiff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hdanswers/answerset/ans"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Print writes one line per difference:
//
//	+ Added Name
//	- Removed Name
//	~ Name[0][1]: "old" -> "new"
//	~ Name: type Text -> Number
//
// Text values whose character diff is small are shown inline with
// {-deleted-} and {+inserted+} markers, or colors when colored is set.
func (r *Result) Print(w io.Writer, colored bool) error {
	p := newPrinter(colored)
	bw := bufio.NewWriter(w)
	for _, name := range r.Added {
		fmt.Fprintf(bw, "%s %s\n", p.ins("+"), name)
	}
	for _, name := range r.Removed {
		fmt.Fprintf(bw, "%s %s\n", p.del("-"), name)
	}
	for i := range r.Changed {
		c := &r.Changed[i]
		fmt.Fprintf(bw, "%s %s%s: %s\n", p.mod("~"), c.Name, pathString(c.Path), p.change(c))
	}
	return bw.Flush()
}

type printer struct {
	colored            bool
	ins, del, mod, dim func(a ...any) string
}

func newPrinter(colored bool) *printer {
	p := &printer{colored: colored}
	if !colored {
		plain := func(a ...any) string { return fmt.Sprint(a...) }
		p.ins, p.del, p.mod, p.dim = plain, plain, plain, plain
		return p
	}
	p.ins = colorFunc(color.FgGreen)
	p.del = colorFunc(color.FgRed)
	p.mod = colorFunc(color.FgYellow)
	p.dim = colorFunc(color.FgHiBlack)
	return p
}

func colorFunc(attr color.Attribute) func(a ...any) string {
	c := color.New(attr)
	c.EnableColor()
	return c.SprintFunc()
}

func (p *printer) change(c *Change) string {
	if c.Kind != ValueChange {
		return p.dim(c.Detail)
	}
	if c.Text != nil && TextDiffSize(c.Text) <= min(len(c.From.String()), len(c.To.String()))/2 {
		return `"` + p.inline(c.Text) + `"`
	}
	return valueString(c.From) + " -> " + valueString(c.To)
}

func (p *printer) inline(diffs []diffpatch.Diff) string {
	var sb strings.Builder
	for i := range diffs {
		d := &diffs[i]
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffInsert:
			if p.colored {
				sb.WriteString(p.ins(d.Text))
			} else {
				sb.WriteString("{+" + d.Text + "+}")
			}
		case diffpatch.DiffDelete:
			if p.colored {
				sb.WriteString(p.del(d.Text))
			} else {
				sb.WriteString("{-" + d.Text + "-}")
			}
		}
	}
	return sb.String()
}

func valueString(v ans.Value) string {
	if v == nil || !v.IsAnswered() {
		return "<unanswered>"
	}
	return strconv.Quote(v.String())
}

func pathString(path []int) string {
	var sb strings.Builder
	for _, i := range path {
		sb.WriteString("[" + strconv.Itoa(i) + "]")
	}
	return sb.String()
}
