package libdiff

import (
	"fmt"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type ChangeKind int

const (
	// ValueChange is a leaf whose value differs.
	ValueChange ChangeKind = iota
	// ShapeChange is a repeat child present on one side only, or a node
	// that is a leaf on one side and a repeat on the other.
	ShapeChange
	// MetaChange is a difference in answer metadata: type, repeated, save
	// or userExtendible.
	MetaChange
)

func (k ChangeKind) String() string {
	switch k {
	case ValueChange:
		return "value"
	case ShapeChange:
		return "shape"
	case MetaChange:
		return "meta"
	}
	return fmt.Sprintf("<ChangeKind %d>", int(k))
}

type Change struct {
	Name string
	Path []int
	Kind ChangeKind

	// From and To are set for value changes.
	From, To ans.Value
	// Text is a character diff, set when From and To are both answered text.
	Text []diffpatch.Diff
	// Detail describes shape and meta changes.
	Detail string
}

type Result struct {
	Added   []string
	Removed []string
	Changed []Change
}

func (r *Result) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Diff lists the differences that turn from into to. Names in Added and
// Changed are spelled as in to, names in Removed as in from.
func Diff(from, to *ans.Collection) *Result {
	res := &Result{}
	for name, a := range from.All() {
		b, ok := to.TryGetAnswer(name)
		if !ok {
			res.Removed = append(res.Removed, name)
			continue
		}
		res.Changed = append(res.Changed, diffAnswer(a, b)...)
	}
	for name := range to.All() {
		if _, ok := from.TryGetAnswer(name); !ok {
			res.Added = append(res.Added, name)
		}
	}
	if debug.Diff() {
		debug.Logf("diff %v %v: +%d -%d ~%d", from, to, len(res.Added), len(res.Removed), len(res.Changed))
	}
	return res
}

func diffAnswer(a, b *ans.Answer) []Change {
	var res []Change
	meta := func(what string, x, y any) {
		if x != y {
			res = append(res, Change{
				Name:   b.Name(),
				Kind:   MetaChange,
				Detail: fmt.Sprintf("%s %v -> %v", what, x, y),
			})
		}
	}
	meta("type", a.Type(), b.Type())
	meta("repeated", a.IsRepeated(), b.IsRepeated())
	meta("save", a.Save, b.Save)
	meta("userExtendible", a.UserExtendible, b.UserExtendible)
	d := &differ{name: b.Name(), fromType: a.Type(), toType: b.Type()}
	d.node(nil, a.Root(), b.Root())
	return append(res, d.changes...)
}

type differ struct {
	name             string
	fromType, toType ans.ValueType
	changes          []Change
}

func (d *differ) add(c Change) {
	c.Name = d.name
	d.changes = append(d.changes, c)
}

func (d *differ) node(path []int, x, y *ans.Node) {
	switch {
	case x.IsLeaf() && y.IsLeaf():
		d.leaf(path, x.Value(), y.Value())
	case x.IsLeaf() != y.IsLeaf():
		d.add(Change{
			Path:   clonePath(path),
			Kind:   ShapeChange,
			Detail: fmt.Sprintf("%s -> %s", shape(x), shape(y)),
		})
	default:
		n := max(x.Len(), y.Len())
		for i := 0; i < n; i++ {
			p := append(clonePath(path), i)
			xc, yc := x.Child(i), y.Child(i)
			switch {
			case xc == nil:
				d.add(Change{Path: p, Kind: ShapeChange, Detail: "added " + shape(yc)})
			case yc == nil:
				d.add(Change{Path: p, Kind: ShapeChange, Detail: "removed " + shape(xc)})
			default:
				d.node(p, xc, yc)
			}
		}
	}
}

func (d *differ) leaf(path []int, x, y ans.Value) {
	if x == nil {
		x = ans.Unanswered(d.fromType)
	}
	if y == nil {
		y = ans.Unanswered(d.toType)
	}
	if ans.Equal(x, y) {
		return
	}
	c := Change{Path: clonePath(path), Kind: ValueChange, From: x, To: y}
	if xt, ok := x.(ans.TextValue); ok && x.IsAnswered() {
		if yt, ok := y.(ans.TextValue); ok && y.IsAnswered() {
			c.Text = DiffText(xt.Value, yt.Value)
		}
	}
	d.add(c)
}

func shape(n *ans.Node) string {
	if n.IsRepeat() {
		return fmt.Sprintf("repeat(%d)", n.Len())
	}
	return "leaf"
}

func clonePath(p []int) []int {
	return append([]int(nil), p...)
}
