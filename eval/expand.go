package eval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hdanswers/answerset/ans"
)

// Expand replaces each $[expr] in tmpl with the result of evaluating expr
// against c. Inside an expression a backslash escapes the next character,
// so \] is a literal ].
//
//	Dear $[value("Client Name")], you have $[count("Child Name")] children.
func Expand(c *ans.Collection, tmpl string) (string, error) {
	var (
		out, key  strings.Builder
		inExpr    bool
		exprStart int
	)
	for i := 0; i < len(tmpl); i++ {
		ch := tmpl[i]
		switch {
		case !inExpr && ch == '$' && i+1 < len(tmpl) && tmpl[i+1] == '[':
			inExpr = true
			exprStart = i
			key.Reset()
			i++
		case !inExpr:
			out.WriteByte(ch)
		case ch == '\\' && i+1 < len(tmpl):
			key.WriteByte(tmpl[i+1])
			i++
		case ch == ']':
			src := strings.TrimSpace(key.String())
			v, err := Eval(c, src)
			if err != nil {
				return "", fmt.Errorf("at offset %d: %w", exprStart, err)
			}
			out.WriteString(Format(v))
			inExpr = false
		default:
			key.WriteByte(ch)
		}
	}
	if inExpr {
		return "", fmt.Errorf("%w: unterminated $[ at offset %d", ErrEval, exprStart)
	}
	return out.String(), nil
}

// Format renders an expression result as text. Dates use ans.DateLayout,
// lists are joined with ", " and nil is empty.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(ans.DateLayout)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = Format(e)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(x, ", ")
	default:
		return fmt.Sprint(x)
	}
}
