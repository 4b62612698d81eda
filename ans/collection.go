package ans

import (
	"fmt"
	"iter"

	"golang.org/x/text/cases"
)

const DefaultVersion = "1.1"

// Collection is an ordered set of answers keyed by case folded name.
type Collection struct {
	Title           string
	Version         string
	UseMangledNames bool

	answers []*Answer
	index   map[string]int
}

func New() *Collection {
	return &Collection{
		Version: DefaultVersion,
		index:   map[string]int{},
	}
}

// FoldName returns the lookup key of an answer name.
func FoldName(name string) string {
	return cases.Fold().String(name)
}

// Add puts a in the collection. An answer whose name folds to the same key
// is replaced in place; otherwise a is appended.
func (c *Collection) Add(a *Answer) {
	if c.index == nil {
		c.index = map[string]int{}
	}
	key := FoldName(a.name)
	if i, ok := c.index[key]; ok {
		c.answers[i] = a
		return
	}
	c.index[key] = len(c.answers)
	c.answers = append(c.answers, a)
}

// TryGetAnswer looks name up ignoring case.
func (c *Collection) TryGetAnswer(name string) (*Answer, bool) {
	i, ok := c.index[FoldName(name)]
	if !ok {
		return nil, false
	}
	return c.answers[i], true
}

// Answer is like TryGetAnswer but reports absence as ErrNotFound.
func (c *Collection) Answer(name string) (*Answer, error) {
	a, ok := c.TryGetAnswer(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return a, nil
}

func (c *Collection) Remove(name string) bool {
	key := FoldName(name)
	i, ok := c.index[key]
	if !ok {
		return false
	}
	c.answers = append(c.answers[:i], c.answers[i+1:]...)
	delete(c.index, key)
	for j := i; j < len(c.answers); j++ {
		c.index[FoldName(c.answers[j].name)] = j
	}
	return true
}

func (c *Collection) AnswerCount() int { return len(c.answers) }

// Names returns the answer names as given, in insertion order.
func (c *Collection) Names() []string {
	res := make([]string, len(c.answers))
	for i, a := range c.answers {
		res[i] = a.name
	}
	return res
}

// All iterates over the answers in insertion order.
func (c *Collection) All() iter.Seq2[string, *Answer] {
	return func(yield func(string, *Answer) bool) {
		for _, a := range c.answers {
			if !yield(a.name, a) {
				return
			}
		}
	}
}

func (c *Collection) Clear() {
	c.answers = nil
	c.index = map[string]int{}
}

// Overlay adds a copy of every answer of other to c, replacing answers of
// the same name.
func (c *Collection) Overlay(other *Collection) {
	for _, a := range other.answers {
		c.Add(a.Clone())
	}
}

func (c *Collection) Clone() *Collection {
	res := &Collection{
		Title:           c.Title,
		Version:         c.Version,
		UseMangledNames: c.UseMangledNames,
	}
	res.Overlay(c)
	return res
}
