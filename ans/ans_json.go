package ans

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// The JSON form of a collection:
//
//	{"title": "", "version": "1.1", "useMangledNames": false,
//	 "answers": [{"name": "N", "type": "Text", "value": <node>}]}
//
// A repeat node is an array of nodes. A leaf is an object with one payload
// field (text, num, date, tf or mc), or {"type": T, "unans": true} when it
// is unanswered.

type collectionJSON struct {
	Title           string       `json:"title"`
	Version         string       `json:"version,omitempty"`
	UseMangledNames bool         `json:"useMangledNames"`
	Answers         []answerJSON `json:"answers"`
}

type answerJSON struct {
	Name           string    `json:"name"`
	Type           ValueType `json:"type"`
	Save           *bool     `json:"save,omitempty"`
	UserExtendible *bool     `json:"userExtendible,omitempty"`
	Value          *Node     `json:"value"`
}

type leafJSON struct {
	Type           *ValueType `json:"type,omitempty"`
	Text           *string    `json:"text,omitempty"`
	Num            *string    `json:"num,omitempty"`
	Date           *string    `json:"date,omitempty"`
	TF             *bool      `json:"tf,omitempty"`
	MC             *[]string  `json:"mc,omitempty"`
	Unans          bool       `json:"unans,omitempty"`
	UserModifiable *bool      `json:"userModifiable,omitempty"`
}

func (c *Collection) MarshalJSON() ([]byte, error) {
	cj := collectionJSON{
		Title:           c.Title,
		Version:         c.Version,
		UseMangledNames: c.UseMangledNames,
		Answers:         make([]answerJSON, len(c.answers)),
	}
	for i, a := range c.answers {
		cj.Answers[i] = answerJSON{
			Name:           a.name,
			Type:           a.typ,
			Save:           falsePtr(a.Save),
			UserExtendible: falsePtr(a.UserExtendible),
			Value:          a.root,
		}
	}
	return json.Marshal(cj)
}

func (c *Collection) UnmarshalJSON(d []byte) error {
	cj := &collectionJSON{}
	if err := json.Unmarshal(d, cj); err != nil {
		if errors.Is(err, ErrParse) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := New()
	res.Title = cj.Title
	res.UseMangledNames = cj.UseMangledNames
	if cj.Version != "" {
		res.Version = cj.Version
	}
	for i := range cj.Answers {
		aj := &cj.Answers[i]
		if aj.Name == "" {
			return fmt.Errorf("%w: answer %d has no name", ErrParse, i)
		}
		if _, dup := res.TryGetAnswer(aj.Name); dup {
			return fmt.Errorf("%w: duplicate answer %q", ErrParse, aj.Name)
		}
		t := aj.Type
		if t == UnknownType && aj.Value != nil {
			t = firstType(aj.Value)
		}
		a := NewAnswerFromNode(aj.Name, t, aj.Value)
		a.Save = aj.Save == nil || *aj.Save
		a.UserExtendible = aj.UserExtendible == nil || *aj.UserExtendible
		res.Add(a)
	}
	*c = *res
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	if n.repeat {
		children := n.children
		if children == nil {
			children = []*Node{}
		}
		return json.Marshal(children)
	}
	return json.Marshal(leafToJSON(n.value))
}

func (n *Node) UnmarshalJSON(d []byte) error {
	d = bytes.TrimSpace(d)
	if len(d) == 0 {
		return fmt.Errorf("%w: empty answer value", ErrParse)
	}
	switch d[0] {
	case '[':
		var children []*Node
		if err := json.Unmarshal(d, &children); err != nil {
			return err
		}
		for i, c := range children {
			if c == nil {
				return fmt.Errorf("%w: null repeat entry %d", ErrParse, i)
			}
		}
		*n = Node{repeat: true, children: children}
		return nil
	case '{':
		lj := &leafJSON{}
		if err := json.Unmarshal(d, lj); err != nil {
			return err
		}
		v, err := lj.value()
		if err != nil {
			return err
		}
		*n = Node{value: v}
		return nil
	default:
		return fmt.Errorf("%w: answer value must be an array or an object, got %.20s", ErrParse, d)
	}
}

func leafToJSON(v Value) *leafJSON {
	if v == nil {
		return &leafJSON{Unans: true}
	}
	res := &leafJSON{UserModifiable: falsePtr(v.UserModifiable())}
	if !v.IsAnswered() {
		t := v.Type()
		res.Type = &t
		res.Unans = true
		return res
	}
	switch x := v.(type) {
	case TextValue:
		res.Text = &x.Value
	case NumberValue:
		s := x.Value.String()
		res.Num = &s
	case DateValue:
		s := x.String()
		res.Date = &s
	case TrueFalseValue:
		res.TF = &x.Value
	case MultipleChoiceValue:
		choices := x.Choices()
		if choices == nil {
			choices = []string{}
		}
		res.MC = &choices
	}
	return res
}

func (lj *leafJSON) value() (Value, error) {
	var (
		kinds []ValueType
		v     Value
	)
	if lj.Text != nil {
		kinds = append(kinds, TextType)
		v = Text(*lj.Text)
	}
	if lj.Num != nil {
		kinds = append(kinds, NumberType)
		d, err := decimal.NewFromString(*lj.Num)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrParse, *lj.Num)
		}
		v = Number(d)
	}
	if lj.Date != nil {
		kinds = append(kinds, DateType)
		t, err := ParseDate(*lj.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		v = Date(t)
	}
	if lj.TF != nil {
		kinds = append(kinds, TrueFalseType)
		v = TrueFalse(*lj.TF)
	}
	if lj.MC != nil {
		kinds = append(kinds, MultipleChoiceType)
		v = MultipleChoice(*lj.MC...)
	}
	if len(kinds) > 1 {
		return nil, fmt.Errorf("%w: value has several payloads %v", ErrParse, kinds)
	}
	locked := lj.UserModifiable != nil && !*lj.UserModifiable
	if lj.Unans {
		t := UnknownType
		if lj.Type != nil {
			t = *lj.Type
		} else if len(kinds) == 1 {
			t = kinds[0]
		}
		if t == UnknownType {
			return nil, nil
		}
		return WithLocked(Unanswered(t), locked), nil
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: answered value without payload", ErrParse)
	}
	if lj.Type != nil && *lj.Type != kinds[0] {
		return nil, fmt.Errorf("%w: value declared %s holds a %s payload", ErrParse, *lj.Type, kinds[0])
	}
	return WithLocked(v, locked), nil
}

// firstType is the type of the first value found under n.
func firstType(n *Node) ValueType {
	res := UnknownType
	n.Walk(func(_ []int, x *Node) error {
		if v := x.Value(); v != nil {
			res = v.Type()
			return errStop
		}
		return nil
	})
	return res
}

var errStop = errors.New("stop")

func falsePtr(b bool) *bool {
	if b {
		return nil
	}
	return &b
}
