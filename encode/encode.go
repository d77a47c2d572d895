package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/jot-format/jot/ir"
)

func Encode(node *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:    2,
		precision: -1,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Value, w io.Writer, es *EncState) error {
	switch node.Kind() {
	case ir.UndefinedKind:
		return encodeUndefined(w, es)
	case ir.NullKind:
		return encodeNull(w, es)
	case ir.BoolKind:
		return encodeBool(node, w, es)
	case ir.IntKind:
		return encodeInt(node, w, es)
	case ir.FloatKind:
		return encodeFloat(node, w, es)
	case ir.StringKind:
		return encodeString(node, w, es)
	case ir.ArrayKind:
		return encodeArray(node, w, es)
	case ir.ObjectKind:
		return encodeObject(node, w, es)
	}
	return fmt.Errorf("%w: unknown kind %d", ErrBadValue, node.Kind())
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeIndent(w io.Writer, es *EncState) error {
	return writeString(w, strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func applyColor(es *EncState, kind ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(kind, attr, v)
}

func writeDumpPrefix(w io.Writer, es *EncState, kind ir.Kind, sized bool, n int) error {
	if !es.debugDump {
		return nil
	}
	var prefix string
	if sized {
		prefix = fmt.Sprintf("/***  %s[%d]  ***/ ", dumpName(kind), n)
	} else {
		prefix = fmt.Sprintf("/***  %s  ***/ ", dumpName(kind))
	}
	return writeString(w, applyColor(es, kind, CommentColor, prefix))
}

// dumpName is the historical dump spelling, which differs from
// Kind.String for a couple of kinds.
func dumpName(kind ir.Kind) string {
	switch kind {
	case ir.BoolKind:
		return "BOOLEAN"
	case ir.IntKind:
		return "INTEGER"
	case ir.FloatKind:
		return "FLOATING"
	}
	return strings.ToUpper(kind.String())
}

func encodeUndefined(w io.Writer, es *EncState) error {
	if !es.debugDump {
		return fmt.Errorf("%w: undefined is not allowed", ErrBadValue)
	}
	if err := writeDumpPrefix(w, es, ir.UndefinedKind, false, 0); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.UndefinedKind, ValueColor, "undefined /* not allowed */"))
}

func encodeNull(w io.Writer, es *EncState) error {
	if err := writeDumpPrefix(w, es, ir.NullKind, false, 0); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.NullKind, ValueColor, "null"))
}

func encodeBool(node *ir.Value, w io.Writer, es *EncState) error {
	if err := writeDumpPrefix(w, es, ir.BoolKind, false, 0); err != nil {
		return err
	}
	v, _ := node.AsBool()
	s := "false"
	if v {
		s = "true"
	}
	return writeString(w, applyColor(es, ir.BoolKind, ValueColor, s))
}

func encodeInt(node *ir.Value, w io.Writer, es *EncState) error {
	if err := writeDumpPrefix(w, es, ir.IntKind, false, 0); err != nil {
		return err
	}
	v, _ := node.AsInt()
	return writeString(w, applyColor(es, ir.IntKind, ValueColor, strconv.FormatInt(v, 10)))
}

func encodeFloat(node *ir.Value, w io.Writer, es *EncState) error {
	if err := writeDumpPrefix(w, es, ir.FloatKind, false, 0); err != nil {
		return err
	}
	v, _ := node.AsFloat()
	s, err := formatFloat(v, es)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.FloatKind, ValueColor, s))
}

// Infinities have no syntax of their own; they are written as decimal
// literals whose exponent is far out of range, so that reading them
// back saturates to the same infinity.
const (
	posInfLiteral = "1.0e999999999"
	negInfLiteral = "-1.0e999999999"
)

func formatFloat(v float64, es *EncState) (string, error) {
	if math.IsNaN(v) {
		if es.debugDump {
			return "NaN /* not allowed */", nil
		}
		return "", fmt.Errorf("%w: NaN is not allowed", ErrBadValue)
	}
	if math.IsInf(v, 1) {
		return posInfLiteral, nil
	}
	if math.IsInf(v, -1) {
		return negInfLiteral, nil
	}

	format := byte('g')
	if es.precision >= 0 {
		// the configured format only applies inside the magnitude
		// window where it stays readable
		abs := math.Abs(v)
		if abs < math.Pow(10, float64(es.precision)) &&
			abs > math.Pow(10, -float64(es.precision)) {
			switch es.floatFormat {
			case FixedFloat:
				format = 'f'
			case ScientificFloat:
				format = 'e'
			}
		}
	}
	return strconv.FormatFloat(v, format, es.precision, 64), nil
}

func encodeString(node *ir.Value, w io.Writer, es *EncState) error {
	v, _ := node.AsString()
	if err := writeDumpPrefix(w, es, ir.StringKind, true, len(v)); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.StringKind, ValueColor, quoteString(v)))
}

func encodeArray(node *ir.Value, w io.Writer, es *EncState) error {
	elts, _ := node.AsArray()
	if err := writeDumpPrefix(w, es, ir.ArrayKind, true, len(elts)); err != nil {
		return err
	}
	if len(elts) == 0 {
		return writeString(w, applyColor(es, ir.ArrayKind, SepColor, "[]"))
	}

	if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, "[")); err != nil {
		return err
	}
	if es.pretty {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	es.depth++
	for i, elt := range elts {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, ",")); err != nil {
				return err
			}
			if es.pretty {
				if err := writeString(w, "\n"); err != nil {
					return err
				}
			}
		}
		if es.pretty {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.pretty {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayKind, SepColor, "]"))
}

func encodeObject(node *ir.Value, w io.Writer, es *EncState) error {
	members, _ := node.AsObject()
	if err := writeDumpPrefix(w, es, ir.ObjectKind, true, len(members)); err != nil {
		return err
	}
	if len(members) == 0 {
		return writeString(w, applyColor(es, ir.ObjectKind, SepColor, "{}"))
	}

	if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, "{")); err != nil {
		return err
	}
	if es.pretty {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	es.depth++
	for i := range members {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, ",")); err != nil {
				return err
			}
			if es.pretty {
				if err := writeString(w, "\n"); err != nil {
					return err
				}
			}
		}
		if es.pretty {
			if err := writeIndent(w, es); err != nil {
				return err
			}
		}
		if err := writeString(w, applyColor(es, ir.ObjectKind, FieldColor, quoteString(members[i].Key))); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeString(w, applyColor(es, ir.ObjectKind, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(members[i].Value, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.pretty {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		if err := writeIndent(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ObjectKind, SepColor, "}"))
}
