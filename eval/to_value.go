package eval

import (
	"fmt"

	"github.com/hdanswers/answerset/ans"
)

// Native returns the payload of v as a plain Go value for expressions:
// string, float64, time.Time, bool or []any of strings. Unanswered values
// and nil give nil.
func Native(v ans.Value) any {
	if v == nil || !v.IsAnswered() {
		return nil
	}
	switch x := v.(type) {
	case ans.TextValue:
		return x.Value
	case ans.NumberValue:
		return x.Value.InexactFloat64()
	case ans.DateValue:
		return x.Value
	case ans.TrueFalseValue:
		return x.Value
	case ans.MultipleChoiceValue:
		choices := x.Choices()
		res := make([]any, len(choices))
		for i, c := range choices {
			res[i] = c
		}
		return res
	}
	return nil
}

func toIndices(params []any) ([]int, error) {
	res := make([]int, len(params))
	for i, p := range params {
		switch x := p.(type) {
		case int:
			res[i] = x
		case int64:
			res[i] = int(x)
		case float64:
			if x != float64(int(x)) {
				return nil, fmt.Errorf("%w: index %v is not an integer", ErrEval, x)
			}
			res[i] = int(x)
		default:
			return nil, fmt.Errorf("%w: index %v has type %T", ErrEval, p, p)
		}
	}
	return res, nil
}
