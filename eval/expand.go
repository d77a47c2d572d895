package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jot-format/jot/debug"
	"github.com/signadot/jot-format/jot/encode"
	"github.com/signadot/jot-format/jot/ir"
)

// ExpandEnv interpolates $[...] expressions in every string of the
// tree in place, evaluating them against env and doc itself.
func ExpandEnv(node *ir.Value, env Env) error {
	return node.Visit(func(v *ir.Value, isPost bool) (bool, error) {
		if isPost || !v.IsString() {
			return true, nil
		}
		s, _ := v.AsString()
		xs, err := expandString(node, s, env)
		if err != nil {
			return false, fmt.Errorf("error expanding %q: %w", s, err)
		}
		if xs != s {
			v.Ref().Set(ir.FromString(xs))
		}
		return true, nil
	})
}

// ExpandString expands $[...] expressions in a string.
//
// Expressions are evaluated using expr-lang against the provided
// environment. Within expressions, backslash escaping is supported:
//   - \] → literal ] (does not close the expression)
//   - \\ → literal \
//   - \x → x (for any character x)
//
// If an expression is not closed with an unescaped ], the text is
// treated as a literal string rather than an expression.
func ExpandString(v string, env Env) (string, error) {
	return expandString(nil, v, env)
}

func expandString(doc *ir.Value, v string, env Env) (string, error) {
	if len(v) < 3 {
		return v, nil
	}
	exprStart := -1 // position of the $ that starts the expression
	i := 0
	n := len(v)
	var outBuf []byte // accumulates the final output
	var keyBuf []byte // accumulates the current expression content

	for i < n-1 {
		c, next := v[i], v[i+1]
		i++
		switch c {
		case '$':
			if next == '[' {
				exprStart = i - 1
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		case '\\':
			if exprStart != -1 {
				keyBuf = append(keyBuf, next)
				i++
				continue
			}
			outBuf = append(outBuf, c)
		case ']':
			if exprStart != -1 {
				x, err := evalKey(doc, keyBuf, env)
				if err != nil {
					return "", err
				}
				outBuf = append(outBuf, x...)
				exprStart = -1
				continue
			}
			outBuf = append(outBuf, c)
		default:
			if exprStart == -1 {
				outBuf = append(outBuf, c)
			} else {
				keyBuf = append(keyBuf, c)
			}
		}
	}

	if exprStart == -1 {
		outBuf = append(outBuf, v[n-1])
		return string(outBuf), nil
	}

	// still inside an expression, valid only when the string closes it
	if v[n-1] != ']' {
		outBuf = append(outBuf, v[exprStart:n]...)
		return string(outBuf), nil
	}

	x, err := evalKey(doc, keyBuf, env)
	if err != nil {
		return "", err
	}
	outBuf = append(outBuf, x...)
	return string(outBuf), nil
}

func evalKey(doc *ir.Value, keyBuf []byte, env Env) ([]byte, error) {
	key := strings.TrimSpace(string(keyBuf))
	x, err := eval(doc, key, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", key, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave ", key)
		debug.LogAny(x)
		debug.Logf("\n")
	}
	res, err := anyToBytes(x)
	if err != nil {
		return nil, fmt.Errorf("could not marshal evaluation results for %s: %w", key, err)
	}
	return res, nil
}

func anyToBytes(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case int:
		return []byte(strconv.Itoa(x)), nil
	case int64:
		return []byte(strconv.FormatInt(x, 10)), nil
	case float64:
		return []byte(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case bool:
		return []byte(strconv.FormatBool(x)), nil
	case *ir.Value:
		if x.IsString() {
			s, _ := x.AsString()
			return []byte(s), nil
		}
		s, err := encode.String(x)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	default:
		node, err := FromAny(v)
		if err != nil {
			return nil, err
		}
		s, err := encode.String(node)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
}
