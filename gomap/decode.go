// Package gomap decodes answer sets into Go values.
//
// An answer set is seen as a JSON object keyed by answer name. Text is a
// string, Number a JSON number, Date a "2006-01-02" string, TrueFalse a bool
// and MultipleChoice a list of strings. Unanswered values are null and
// repeats are lists, so a struct field for a repeated Number answer is a
// []float64 or a []decimal.Decimal and a field for a nested repeat of text
// is a [][]string.
package gomap

import (
	"fmt"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"
	"github.com/hdanswers/answerset/format"
	"github.com/hdanswers/answerset/parse"

	"github.com/goccy/go-json"
)

type fromOpts struct {
	format *format.Format
}

func (do *fromOpts) parseOpts() []parse.ParseOption {
	if do.format == nil {
		return nil
	}
	return []parse.ParseOption{parse.ParseFormat(*do.format)}
}

type FromOption func(*fromOpts)

// LoadFormat reads input in f instead of detecting its format.
func LoadFormat(f format.Format) FromOption { return func(o *fromOpts) { o.format = &f } }

// AnswersDecoder is implemented by values which decode themselves.
type AnswersDecoder interface {
	DecodeAnswers(*ans.Collection) error
}

// Load parses d as an answer file and decodes it into p.
func Load(d []byte, p any, opts ...FromOption) error {
	do := &fromOpts{}
	for _, f := range opts {
		f(do)
	}
	c, err := parse.Parse(d, do.parseOpts()...)
	if err != nil {
		return err
	}
	return Decode(c, p)
}

// Decode stores the answers of c in p, a pointer, as encoding/json would
// store the object ToMap(c).
func Decode(c *ans.Collection, p any) error {
	if x, ok := p.(AnswersDecoder); ok {
		return x.DecodeAnswers(c)
	}
	d, err := json.Marshal(ToMap(c))
	if err != nil {
		return fmt.Errorf("error encoding answers: %w", err)
	}
	if debug.Decode() {
		debug.Logf("gomap decode %T from %s", p, d)
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("error decoding answers into %T: %w", p, err)
	}
	return nil
}

// ToMap returns the answers of c keyed by name.
func ToMap(c *ans.Collection) map[string]any {
	res := make(map[string]any, c.AnswerCount())
	for _, a := range c.All() {
		res[a.Name()] = nodeToAny(a.Root())
	}
	return res
}

func nodeToAny(n *ans.Node) any {
	if n.IsLeaf() {
		return valueToAny(n.Value())
	}
	res := make([]any, n.Len())
	for i, child := range n.Children() {
		res[i] = nodeToAny(child)
	}
	return res
}

func valueToAny(v ans.Value) any {
	if v == nil || !v.IsAnswered() {
		return nil
	}
	switch x := v.(type) {
	case ans.TextValue:
		return x.Value
	case ans.NumberValue:
		return json.RawMessage(x.Value.String())
	case ans.DateValue:
		return x.Value.Format(ans.DateLayout)
	case ans.TrueFalseValue:
		return x.Value
	case ans.MultipleChoiceValue:
		return x.Choices()
	}
	return nil
}
