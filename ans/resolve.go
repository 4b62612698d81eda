package ans

import (
	"fmt"
	"sync/atomic"
)

type ResolveMode int

const (
	// ResolveRead never modifies the tree.
	ResolveRead ResolveMode = iota
	// ResolveWrite grows the tree so that a leaf exists at the result.
	ResolveWrite
)

func (m ResolveMode) String() string {
	if m == ResolveWrite {
		return "write"
	}
	return "read"
}

// ResolveTrace observes each completed resolution.
type ResolveTrace func(mode ResolveMode, indices []int, leaf *Node)

var resolveTrace atomic.Pointer[ResolveTrace]

// SetResolveTrace installs f to be called after every Resolve. A nil f
// removes the trace.
func SetResolveTrace(f ResolveTrace) {
	if f == nil {
		resolveTrace.Store(nil)
		return
	}
	resolveTrace.Store(&f)
}

// Resolve maps indices onto the tree rooted at root and returns the leaf
// they select.
//
// Indices are consumed in order. On a repeat, an index within range selects
// that child and any other index selects child 0. Once a leaf is reached the
// remaining indices are ignored. If indices run out on a repeat, child 0 is
// taken at each level until a leaf is reached.
//
// In ResolveRead mode, reaching an empty repeat yields a nil leaf and no
// error. In ResolveWrite mode empty repeats are given a child 0, and an index
// past the end of a repeat grows it up to that index, so the returned leaf is
// never nil. New children take the shape of their siblings, or are repeats
// when more levels are expected below them.
//
// A negative index is an ErrInvalidIndex.
func Resolve(root *Node, mode ResolveMode, indices ...int) (*Node, error) {
	n, err := resolve(root, mode, indices)
	if f := resolveTrace.Load(); f != nil && err == nil {
		(*f)(mode, indices, n)
	}
	return n, err
}

func resolve(root *Node, mode ResolveMode, indices []int) (*Node, error) {
	if err := checkIndices(indices); err != nil {
		return nil, err
	}
	depth := 0
	if mode == ResolveWrite {
		depth = root.Depth()
	}
	n := root
	level := 0
	for j, i := range indices {
		if n.IsLeaf() {
			return n, nil
		}
		deeper := j < len(indices)-1 || level+1 < depth
		n = step(n, i, mode, deeper)
		if n == nil {
			return nil, nil
		}
		level++
	}
	for n.IsRepeat() {
		n = step(n, 0, mode, level+1 < depth)
		if n == nil {
			return nil, nil
		}
		level++
	}
	return n, nil
}

func step(n *Node, i int, mode ResolveMode, deeper bool) *Node {
	if i < len(n.children) {
		return n.children[i]
	}
	if mode == ResolveRead {
		if len(n.children) == 0 {
			return nil
		}
		return n.children[0]
	}
	n.grow(i+1, deeper)
	return n.children[i]
}

// childCount consumes indices as Resolve does in read mode, without the
// trailing descent, and counts the children of the node reached.
func childCount(root *Node, indices ...int) (int, error) {
	if err := checkIndices(indices); err != nil {
		return 0, err
	}
	n := root
	for _, i := range indices {
		if n.IsLeaf() {
			break
		}
		n = step(n, i, ResolveRead, false)
		if n == nil {
			return 0, nil
		}
	}
	if n.IsLeaf() {
		return 0, nil
	}
	return n.answeredLen(), nil
}

// parentOf walks all but the last index strictly, for structural edits.
func parentOf(root *Node, indices []int) (*Node, int, error) {
	if len(indices) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one index is required", ErrInvalidIndex)
	}
	if err := checkIndices(indices); err != nil {
		return nil, 0, err
	}
	n := root
	for _, i := range indices[:len(indices)-1] {
		if n.IsLeaf() || i >= len(n.children) {
			return nil, 0, fmt.Errorf("%w: %v does not address a repeat", ErrInvalidIndex, indices)
		}
		n = n.children[i]
	}
	if n.IsLeaf() {
		return nil, 0, fmt.Errorf("%w: %v does not address a repeat", ErrInvalidIndex, indices)
	}
	return n, indices[len(indices)-1], nil
}

func checkIndices(indices []int) error {
	for _, i := range indices {
		if i < 0 {
			return fmt.Errorf("%w: negative index %d in %v", ErrInvalidIndex, i, indices)
		}
	}
	return nil
}
