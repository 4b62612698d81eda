package ans

import "fmt"

// ValueType is the kind of a value, and the declared kind of an answer.
type ValueType int

const (
	UnknownType ValueType = iota
	TextType
	NumberType
	DateType
	TrueFalseType
	MultipleChoiceType
)

func (t ValueType) String() string {
	s, ok := map[ValueType]string{
		UnknownType:        "Unknown",
		TextType:           "Text",
		NumberType:         "Number",
		DateType:           "Date",
		TrueFalseType:      "TrueFalse",
		MultipleChoiceType: "MultipleChoice",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(d []byte) error {
	tt, ok := map[string]ValueType{
		"Unknown":        UnknownType,
		"Text":           TextType,
		"Number":         NumberType,
		"Date":           DateType,
		"TrueFalse":      TrueFalseType,
		"MultipleChoice": MultipleChoiceType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized value type %q", d)
	}
	*t = tt
	return nil
}

// Types returns the value kinds an answer can hold.
func Types() []ValueType {
	return []ValueType{
		TextType,
		NumberType,
		DateType,
		TrueFalseType,
		MultipleChoiceType,
	}
}

// Element returns the answer file element name for values of kind t.
func (t ValueType) Element() string {
	switch t {
	case TextType:
		return "TextValue"
	case NumberType:
		return "NumValue"
	case DateType:
		return "DateValue"
	case TrueFalseType:
		return "TFValue"
	case MultipleChoiceType:
		return "MCValue"
	default:
		return ""
	}
}

// TypeOfElement is the inverse of Element.
func TypeOfElement(name string) (ValueType, bool) {
	switch name {
	case "TextValue":
		return TextType, true
	case "NumValue":
		return NumberType, true
	case "DateValue":
		return DateType, true
	case "TFValue":
		return TrueFalseType, true
	case "MCValue":
		return MultipleChoiceType, true
	default:
		return UnknownType, false
	}
}
