package ans

import "slices"

// Node is one node of an answer's repeat tree: either a leaf holding a
// single value or a repeat holding an ordered list of child nodes.
//
// A leaf with a nil value is a placeholder; it reads as an unanswered value
// of its answer's type.
type Node struct {
	repeat   bool
	value    Value
	children []*Node
}

func NewLeaf(v Value) *Node {
	return &Node{value: v}
}

func NewRepeat(children ...*Node) *Node {
	return &Node{repeat: true, children: children}
}

func (n *Node) IsLeaf() bool   { return !n.repeat }
func (n *Node) IsRepeat() bool { return n.repeat }

// Value returns the value of a leaf, nil for a repeat or a placeholder.
func (n *Node) Value() Value {
	if n.repeat {
		return nil
	}
	return n.value
}

// Len is the raw number of children of a repeat.
func (n *Node) Len() int { return len(n.children) }

// Child returns child i of a repeat, or nil if there is no such child.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the child list of a repeat.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Answered reports whether any leaf at or below n holds an answered value.
func (n *Node) Answered() bool {
	if !n.repeat {
		return n.value != nil && n.value.IsAnswered()
	}
	for _, c := range n.children {
		if c.Answered() {
			return true
		}
	}
	return false
}

// answeredLen is the number of children up to and including the last one
// holding an answered value.
func (n *Node) answeredLen() int {
	for i := len(n.children) - 1; i >= 0; i-- {
		if n.children[i].Answered() {
			return i + 1
		}
	}
	return 0
}

// Depth is the number of repeat levels above the first leaf, following
// child 0 at each level. An empty repeat counts as one level.
func (n *Node) Depth() int {
	d := 0
	for x := n; x.repeat; x = x.children[0] {
		d++
		if len(x.children) == 0 {
			break
		}
	}
	return d
}

func (n *Node) Clone() *Node {
	res := &Node{repeat: n.repeat, value: n.value}
	if n.repeat {
		res.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			res.children[i] = c.Clone()
		}
	}
	return res
}

// Walk calls f for n and every node below it in pre-order. path holds the
// child indices leading from n to the visited node and must not be
// retained. A non-nil error from f stops the walk and is returned.
func (n *Node) Walk(f func(path []int, n *Node) error) error {
	return n.walk(nil, f)
}

func (n *Node) walk(path []int, f func([]int, *Node) error) error {
	if err := f(path, n); err != nil {
		return err
	}
	for i, c := range n.children {
		if err := c.walk(append(path, i), f); err != nil {
			return err
		}
	}
	return nil
}

// placeholder returns a new node shaped like the other children of n, or
// a repeat when deeper is set and n has no children to copy the shape from.
func (n *Node) placeholder(deeper bool) *Node {
	if len(n.children) > 0 {
		deeper = n.children[0].repeat
	}
	if deeper {
		return NewRepeat()
	}
	return NewLeaf(nil)
}

func (n *Node) grow(size int, deeper bool) {
	for len(n.children) < size {
		n.children = append(n.children, n.placeholder(deeper))
	}
}
