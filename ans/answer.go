package ans

import "fmt"

// Answer is a named entry of a collection and the root of one value tree.
type Answer struct {
	name     string
	typ      ValueType
	repeated bool
	root     *Node

	// Save and UserExtendible mirror the answer file attributes of the same
	// name. Both default to true.
	Save           bool
	UserExtendible bool
}

// NewAnswer returns a scalar answer holding an unanswered value.
func NewAnswer(name string, t ValueType) *Answer {
	return NewAnswerFromNode(name, t, nil)
}

// NewRepeatedAnswer returns a repeated answer with no children.
func NewRepeatedAnswer(name string, t ValueType) *Answer {
	return NewAnswerFromNode(name, t, NewRepeat())
}

// NewAnswerFromNode returns an answer rooted at root. The answer is repeated
// iff root is a repeat. A nil root is an unanswered scalar.
func NewAnswerFromNode(name string, t ValueType, root *Node) *Answer {
	if root == nil {
		root = NewLeaf(nil)
	}
	return &Answer{
		name:           name,
		typ:            t,
		repeated:       root.IsRepeat(),
		root:           root,
		Save:           true,
		UserExtendible: true,
	}
}

func (a *Answer) Name() string      { return a.name }
func (a *Answer) Type() ValueType   { return a.typ }
func (a *Answer) IsRepeated() bool  { return a.repeated }
func (a *Answer) Root() *Node       { return a.root }
func (a *Answer) String() string    { return a.name }
func (a *Answer) Answered() bool    { return a.root.Answered() }
func (a *Answer) GetAnswered() bool { return a.Answered() }

// Value returns the value selected by indices, see Resolve. Positions that
// do not exist read as an unanswered value of the answer's type, which is
// nil when the type is UnknownType.
func (a *Answer) Value(indices ...int) (Value, error) {
	leaf, err := Resolve(a.root, ResolveRead, indices...)
	if err != nil {
		return nil, fmt.Errorf("answer %q: %w", a.name, err)
	}
	if leaf == nil || leaf.value == nil {
		return Unanswered(a.typ), nil
	}
	return leaf.value, nil
}

// GetValue returns the value of a selected by indices as a T. It fails with
// ErrTypeMismatch when T is not the declared type of a.
func GetValue[T Value](a *Answer, indices ...int) (T, error) {
	var zero T
	if k, ok := any(zero).(Value); ok && a.typ != UnknownType && k.Type() != a.typ {
		return zero, fmt.Errorf("%w: answer %q is %s, not %s", ErrTypeMismatch, a.name, a.typ, k.Type())
	}
	v, err := a.Value(indices...)
	if err != nil || v == nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: answer %q holds a %s value at %v", ErrTypeMismatch, a.name, v.Type(), indices)
	}
	return res, nil
}

// SetValue replaces the value selected by indices, growing the tree as
// described by Resolve. Unlike reads, an index past the end of a repeat does
// not fall back to child 0: the repeat is extended with unanswered values up
// to that index. An answer of UnknownType takes the type of the first value
// set.
func (a *Answer) SetValue(v Value, indices ...int) error {
	if v == nil {
		return fmt.Errorf("%w: answer %q: nil value", ErrTypeMismatch, a.name)
	}
	if a.typ != UnknownType && v.Type() != a.typ {
		return fmt.Errorf("%w: answer %q is %s, not %s", ErrTypeMismatch, a.name, a.typ, v.Type())
	}
	leaf, err := Resolve(a.root, ResolveWrite, indices...)
	if err != nil {
		return fmt.Errorf("answer %q: %w", a.name, err)
	}
	if a.typ == UnknownType {
		a.typ = v.Type()
	}
	leaf.value = v
	return nil
}

// GetChildCount returns the number of children of the repeat selected by
// indices, not counting trailing children without any answered value. It
// is 0 when indices select a leaf. The tree is not modified.
func (a *Answer) GetChildCount(indices ...int) (int, error) {
	n, err := childCount(a.root, indices...)
	if err != nil {
		return 0, fmt.Errorf("answer %q: %w", a.name, err)
	}
	return n, nil
}

// InsertIndex inserts an unanswered child at the position given by the last
// index, in the repeat addressed by the others. Later children shift up.
func (a *Answer) InsertIndex(indices ...int) error {
	p, i, err := parentOf(a.root, indices)
	if err != nil {
		return fmt.Errorf("answer %q: %w", a.name, err)
	}
	if i >= len(p.children) {
		p.grow(i+1, false)
		return nil
	}
	p.children = append(p.children, nil)
	copy(p.children[i+1:], p.children[i:])
	p.children[i] = p.placeholder(false)
	return nil
}

// DeleteIndex removes the child at the position given by the last index, in
// the repeat addressed by the others.
func (a *Answer) DeleteIndex(indices ...int) error {
	p, i, err := parentOf(a.root, indices)
	if err != nil {
		return fmt.Errorf("answer %q: %w", a.name, err)
	}
	if i >= len(p.children) {
		return fmt.Errorf("answer %q: %w: %v out of range", a.name, ErrInvalidIndex, indices)
	}
	p.children = append(p.children[:i], p.children[i+1:]...)
	return nil
}

// Rename returns a copy of a under a new name.
func (a *Answer) Rename(name string) *Answer {
	res := a.Clone()
	res.name = name
	return res
}

func (a *Answer) Clone() *Answer {
	res := *a
	res.root = a.root.Clone()
	return &res
}
