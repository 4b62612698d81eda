package eval

import (
	"fmt"

	"github.com/hdanswers/answerset/ans"

	"github.com/expr-lang/expr"
)

// indexed registers name with overloads taking an answer name and up to
// three indices.
func indexed[R any](name string, f func(a *ans.Answer, idx []int) (any, error), c *ans.Collection) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		a, err := lookup(c, params[0])
		if err != nil {
			return nil, err
		}
		idx, err := toIndices(params[1:])
		if err != nil {
			return nil, err
		}
		return f(a, idx)
	},
		new(func(string) R),
		new(func(string, int) R),
		new(func(string, int, int) R),
		new(func(string, int, int, int) R))
}

func lookup(c *ans.Collection, p any) (*ans.Answer, error) {
	name, ok := p.(string)
	if !ok {
		return nil, fmt.Errorf("%w: answer name must be a string, got %T", ErrEval, p)
	}
	return c.Answer(name)
}

func exprOpts(c *ans.Collection) []expr.Option {
	return []expr.Option{
		indexed[any]("value", func(a *ans.Answer, idx []int) (any, error) {
			v, err := a.Value(idx...)
			if err != nil {
				return nil, err
			}
			return Native(v), nil
		}, c),
		indexed[bool]("answered", func(a *ans.Answer, idx []int) (any, error) {
			v, err := a.Value(idx...)
			if err != nil {
				return nil, err
			}
			return v != nil && v.IsAnswered(), nil
		}, c),
		indexed[int]("count", func(a *ans.Answer, idx []int) (any, error) {
			return a.GetChildCount(idx...)
		}, c),
		expr.Function("repeated", func(params ...any) (any, error) {
			a, err := lookup(c, params[0])
			if err != nil {
				return nil, err
			}
			return a.IsRepeated(), nil
		},
			new(func(string) bool)),
		expr.Function("has", func(params ...any) (any, error) {
			name, _ := params[0].(string)
			_, ok := c.TryGetAnswer(name)
			return ok, nil
		},
			new(func(string) bool)),
	}
}
