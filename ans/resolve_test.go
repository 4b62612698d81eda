package ans

import (
	"errors"
	"testing"
)

// authorTree is a doubly repeated answer: one first level child holding "A"
// and an unanswered value, and a second first level child with no children.
func authorTree() *Node {
	return NewRepeat(
		NewRepeat(NewLeaf(Text("A")), NewLeaf(TextValue{})),
		NewRepeat(),
	)
}

func TestResolveRead(t *testing.T) {
	tests := []struct {
		name     string
		indices  []int
		wantNil  bool
		answered bool
		want     string
	}{
		{name: "exact", indices: []int{0, 0}, answered: true, want: "A"},
		{name: "exact unanswered", indices: []int{0, 1}},
		{name: "no indices", indices: nil, answered: true, want: "A"},
		{name: "missing trailing index", indices: []int{0}, answered: true, want: "A"},
		{name: "extra index after leaf", indices: []int{0, 0, 0}, answered: true, want: "A"},
		{name: "extra indices after leaf", indices: []int{0, 0, 7, 3}, answered: true, want: "A"},
		{name: "out of range first level", indices: []int{5, 0}, answered: true, want: "A"},
		{name: "out of range second level", indices: []int{0, 9}, answered: true, want: "A"},
		{name: "empty repeat", indices: []int{1}, wantNil: true},
		{name: "empty repeat with index", indices: []int{1, 0}, wantNil: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := authorTree()
			leaf, err := Resolve(root, ResolveRead, tt.indices...)
			if err != nil {
				t.Fatalf("Resolve(%v) error: %v", tt.indices, err)
			}
			if tt.wantNil {
				if leaf != nil {
					t.Fatalf("Resolve(%v) = %v, want nil", tt.indices, leaf.Value())
				}
				return
			}
			if leaf == nil || !leaf.IsLeaf() {
				t.Fatalf("Resolve(%v) did not reach a leaf", tt.indices)
			}
			v := leaf.Value()
			if v.IsAnswered() != tt.answered {
				t.Errorf("Resolve(%v) answered = %v, want %v", tt.indices, v.IsAnswered(), tt.answered)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.indices, got, tt.want)
			}
		})
	}
}

func TestResolveReadDoesNotGrow(t *testing.T) {
	root := authorTree()
	for _, idx := range [][]int{{1}, {1, 0}, {4, 4}, {}} {
		if _, err := Resolve(root, ResolveRead, idx...); err != nil {
			t.Fatal(err)
		}
	}
	if root.Len() != 2 || root.Child(0).Len() != 2 || root.Child(1).Len() != 0 {
		t.Errorf("read resolution modified the tree: %d %d %d", root.Len(), root.Child(0).Len(), root.Child(1).Len())
	}
}

func TestResolveWrite(t *testing.T) {
	t.Run("fills empty repeat", func(t *testing.T) {
		root := authorTree()
		leaf, err := Resolve(root, ResolveWrite, 1)
		if err != nil {
			t.Fatal(err)
		}
		if leaf == nil || !leaf.IsLeaf() {
			t.Fatal("expected a leaf")
		}
		if root.Child(1).Len() != 1 {
			t.Errorf("empty repeat has %d children, want 1", root.Child(1).Len())
		}
	})
	t.Run("grows to explicit index", func(t *testing.T) {
		root := authorTree()
		if _, err := Resolve(root, ResolveWrite, 3, 2); err != nil {
			t.Fatal(err)
		}
		if root.Len() != 4 {
			t.Fatalf("root has %d children, want 4", root.Len())
		}
		for i := 2; i < 4; i++ {
			if !root.Child(i).IsRepeat() {
				t.Errorf("padding child %d is not a repeat", i)
			}
		}
		if got := root.Child(3).Len(); got != 3 {
			t.Errorf("grown child has %d children, want 3", got)
		}
		if root.Child(2).Len() != 0 {
			t.Errorf("padding child should stay empty")
		}
	})
	t.Run("new repeated answer", func(t *testing.T) {
		root := NewRepeat()
		leaf, err := Resolve(root, ResolveWrite, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !leaf.IsLeaf() || root.Depth() != 2 {
			t.Errorf("got depth %d, want 2", root.Depth())
		}
		leaf, err = Resolve(root, ResolveWrite, 1)
		if err != nil {
			t.Fatal(err)
		}
		if !leaf.IsLeaf() || !root.Child(1).IsRepeat() {
			t.Errorf("sibling placeholder should take the shape of child 0")
		}
	})
	t.Run("scalar ignores indices", func(t *testing.T) {
		root := NewLeaf(Text("x"))
		leaf, err := Resolve(root, ResolveWrite, 4, 5)
		if err != nil {
			t.Fatal(err)
		}
		if leaf != root {
			t.Errorf("expected the root leaf")
		}
	})
}

func TestResolveTrace(t *testing.T) {
	type call struct {
		mode    ResolveMode
		indices []int
		leaf    *Node
	}
	var calls []call
	SetResolveTrace(func(mode ResolveMode, indices []int, leaf *Node) {
		calls = append(calls, call{mode, indices, leaf})
	})
	defer SetResolveTrace(nil)

	root := authorTree()
	leaf, _ := Resolve(root, ResolveRead, 0, 1)
	Resolve(root, ResolveRead, 0, -1)
	Resolve(root, ResolveWrite, 1)
	if len(calls) != 2 {
		t.Fatalf("got %d traced resolutions, want 2", len(calls))
	}
	if calls[0].mode != ResolveRead || calls[0].leaf != leaf || len(calls[0].indices) != 2 {
		t.Errorf("first trace = %+v", calls[0])
	}
	if calls[1].mode != ResolveWrite || calls[1].leaf == nil {
		t.Errorf("second trace = %+v", calls[1])
	}
	SetResolveTrace(nil)
	Resolve(root, ResolveRead)
	if len(calls) != 2 {
		t.Errorf("trace still installed after removal")
	}
}

func TestResolveNegativeIndex(t *testing.T) {
	for _, mode := range []ResolveMode{ResolveRead, ResolveWrite} {
		_, err := Resolve(authorTree(), mode, 0, -1)
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("mode %d: got %v, want ErrInvalidIndex", mode, err)
		}
	}
}

func TestChildCount(t *testing.T) {
	root := authorTree()
	tests := []struct {
		indices []int
		want    int
	}{
		{nil, 1},
		{[]int{0}, 1},
		{[]int{1}, 0},
		{[]int{0, 0}, 0},
		{[]int{7}, 1},
	}
	for _, tt := range tests {
		got, err := childCount(root, tt.indices...)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("childCount(%v) = %d, want %d", tt.indices, got, tt.want)
		}
	}
}

// Sibling nodes of different shape are not supported; resolution walks
// whatever is there and no normalization is promised.
func TestResolveInconsistentDepthUnsupported(t *testing.T) {
	root := NewRepeat(NewLeaf(Text("a")), NewRepeat(NewLeaf(Text("b"))))
	if _, err := Resolve(root, ResolveRead, 1, 0); err != nil {
		t.Fatalf("resolution must not fail on inconsistent depth: %v", err)
	}
}
