package ans

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Value is a typed answer value. The concrete types are TextValue,
// NumberValue, DateValue, TrueFalseValue and MultipleChoiceValue.
type Value interface {
	Type() ValueType
	IsAnswered() bool
	UserModifiable() bool
	String() string

	isValue()
}

const (
	DateLayout = "2006-01-02"

	// ChoiceSep separates selected choices in the single string form of a
	// multiple choice value.
	ChoiceSep = "|"
)

// legacy answer files write dates day first
var legacyDateLayouts = []string{"2/1/2006", time.RFC3339}

type TextValue struct {
	Value    string
	Answered bool
	Locked   bool
}

func Text(s string) TextValue { return TextValue{Value: s, Answered: true} }

func (v TextValue) Type() ValueType      { return TextType }
func (v TextValue) IsAnswered() bool     { return v.Answered }
func (v TextValue) UserModifiable() bool { return !v.Locked }
func (TextValue) isValue()               {}

func (v TextValue) String() string {
	if !v.Answered {
		return ""
	}
	return v.Value
}

type NumberValue struct {
	Value    decimal.Decimal
	Answered bool
	Locked   bool
}

func Number(d decimal.Decimal) NumberValue { return NumberValue{Value: d, Answered: true} }

func (v NumberValue) Type() ValueType      { return NumberType }
func (v NumberValue) IsAnswered() bool     { return v.Answered }
func (v NumberValue) UserModifiable() bool { return !v.Locked }
func (NumberValue) isValue()               {}

func (v NumberValue) String() string {
	if !v.Answered {
		return ""
	}
	return v.Value.String()
}

// DateValue holds a calendar date, kept as UTC midnight.
type DateValue struct {
	Value    time.Time
	Answered bool
	Locked   bool
}

func Date(t time.Time) DateValue {
	return DateValue{Value: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Answered: true}
}

func (v DateValue) Type() ValueType      { return DateType }
func (v DateValue) IsAnswered() bool     { return v.Answered }
func (v DateValue) UserModifiable() bool { return !v.Locked }
func (DateValue) isValue()               {}

func (v DateValue) String() string {
	if !v.Answered {
		return ""
	}
	return v.Value.Format(DateLayout)
}

type TrueFalseValue struct {
	Value    bool
	Answered bool
	Locked   bool
}

func TrueFalse(b bool) TrueFalseValue { return TrueFalseValue{Value: b, Answered: true} }

func (v TrueFalseValue) Type() ValueType      { return TrueFalseType }
func (v TrueFalseValue) IsAnswered() bool     { return v.Answered }
func (v TrueFalseValue) UserModifiable() bool { return !v.Locked }
func (TrueFalseValue) isValue()               {}

func (v TrueFalseValue) String() string {
	if !v.Answered {
		return ""
	}
	return strconv.FormatBool(v.Value)
}

// MultipleChoiceValue holds the set of selected choices, in selection order.
type MultipleChoiceValue struct {
	choices  []string
	Answered bool
	Locked   bool
}

func MultipleChoice(choices ...string) MultipleChoiceValue {
	return MultipleChoiceValue{choices: slices.Clone(choices), Answered: true}
}

func (v MultipleChoiceValue) Type() ValueType      { return MultipleChoiceType }
func (v MultipleChoiceValue) IsAnswered() bool     { return v.Answered }
func (v MultipleChoiceValue) UserModifiable() bool { return !v.Locked }
func (MultipleChoiceValue) isValue()               {}

// Choices returns a copy of the selected choices.
func (v MultipleChoiceValue) Choices() []string { return slices.Clone(v.choices) }

func (v MultipleChoiceValue) String() string {
	if !v.Answered {
		return ""
	}
	return strings.Join(v.choices, ChoiceSep)
}

// Unanswered returns an unanswered value of kind t, or nil for UnknownType.
func Unanswered(t ValueType) Value {
	switch t {
	case TextType:
		return TextValue{}
	case NumberType:
		return NumberValue{}
	case DateType:
		return DateValue{}
	case TrueFalseType:
		return TrueFalseValue{}
	case MultipleChoiceType:
		return MultipleChoiceValue{}
	default:
		return nil
	}
}

// ParseValue builds an answered value of kind t from its string form.
// Multiple choice selections are separated by ChoiceSep.
func ParseValue(t ValueType, s string) (Value, error) {
	switch t {
	case TextType:
		return Text(s), nil
	case NumberType:
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", s, err)
		}
		return Number(d), nil
	case DateType:
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		return Date(d), nil
	case TrueFalseType:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("bad true/false value %q", s)
		}
		return TrueFalse(b), nil
	case MultipleChoiceType:
		if s == "" {
			return MultipleChoice(), nil
		}
		return MultipleChoice(strings.Split(s, ChoiceSep)...), nil
	default:
		return nil, fmt.Errorf("%w: cannot parse a value of type %s", ErrTypeMismatch, t)
	}
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}

// WithLocked returns v with its user modifiable flag cleared when locked
// is true.
func WithLocked(v Value, locked bool) Value {
	switch x := v.(type) {
	case TextValue:
		x.Locked = locked
		return x
	case NumberValue:
		x.Locked = locked
		return x
	case DateValue:
		x.Locked = locked
		return x
	case TrueFalseValue:
		x.Locked = locked
		return x
	case MultipleChoiceValue:
		x.Locked = locked
		return x
	}
	return v
}

// Equal reports whether a and b are the same kind and either both
// unanswered or both answered with equal payloads. The payload of an
// unanswered value is not compared.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() || a.IsAnswered() != b.IsAnswered() || a.UserModifiable() != b.UserModifiable() {
		return false
	}
	if !a.IsAnswered() {
		return true
	}
	switch x := a.(type) {
	case TextValue:
		return x.Value == b.(TextValue).Value
	case NumberValue:
		return x.Value.Equal(b.(NumberValue).Value)
	case DateValue:
		return x.Value.Equal(b.(DateValue).Value)
	case TrueFalseValue:
		return x.Value == b.(TrueFalseValue).Value
	case MultipleChoiceValue:
		return slices.Equal(x.choices, b.(MultipleChoiceValue).choices)
	}
	return false
}
