// Package eval evaluates expr-lang expressions over answer sets.
//
// Expressions see these functions, where idx is zero to three indices
// resolved with the usual index fallback:
//
//	value(name, idx...)     payload of the value, nil when unanswered
//	answered(name, idx...)  whether the value is answered
//	count(name, idx...)     child count of the selected repeat
//	repeated(name)          whether the answer is repeated
//	has(name)               whether the answer exists
//
// and the variable names, the answer names in order.
package eval

import (
	"fmt"

	"github.com/hdanswers/answerset/ans"
	"github.com/hdanswers/answerset/debug"

	"github.com/expr-lang/expr"
)

// Env is the variable environment of an expression.
type Env = map[string]any

func collectionEnv(c *ans.Collection) Env {
	return Env{"names": c.Names()}
}

// Eval compiles and runs src against c.
func Eval(c *ans.Collection, src string) (any, error) {
	env := collectionEnv(c)
	opts := append(exprOpts(c), expr.Env(env))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v", src, res)
	}
	return res, nil
}

// Where returns the answers of c for which the boolean expression pred
// holds. Besides the functions and names, pred sees name, type,
// isRepeated, isAnswered and children for the answer under test.
func Where(c *ans.Collection, pred string) ([]*ans.Answer, error) {
	opts := append(exprOpts(c), expr.Env(answerEnv(c, nil)), expr.AsBool())
	prg, err := expr.Compile(pred, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEval, err)
	}
	var res []*ans.Answer
	for name, a := range c.All() {
		out, err := expr.Run(prg, answerEnv(c, a))
		if err != nil {
			return nil, fmt.Errorf("%w: %q on %q: %w", ErrEval, pred, name, err)
		}
		if out.(bool) {
			res = append(res, a)
		}
	}
	if debug.Eval() {
		debug.Logf("where %q selected %d of %d answers", pred, len(res), c.AnswerCount())
	}
	return res, nil
}

func answerEnv(c *ans.Collection, a *ans.Answer) Env {
	env := collectionEnv(c)
	env["name"] = ""
	env["type"] = ""
	env["isRepeated"] = false
	env["isAnswered"] = false
	env["children"] = 0
	if a == nil {
		return env
	}
	n, _ := a.GetChildCount()
	env["name"] = a.Name()
	env["type"] = a.Type().String()
	env["isRepeated"] = a.IsRepeated()
	env["isAnswered"] = a.Answered()
	env["children"] = n
	return env
}
