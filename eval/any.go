package eval

import (
	"encoding/json"
	"reflect"

	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

// FromAny converts a Go value to a value tree. Trees pass through as
// clones, common scalar and container types convert directly,
// registered converters handle application types, and anything else is
// routed through encoding/json marshaling and reparsed.
func FromAny(v any) (*ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Value:
		return x.Clone(), nil
	case []*ir.Value:
		return ir.FromSlice(x), nil
	case map[string]*ir.Value:
		return ir.FromMap(x), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		elts := make([]*ir.Value, len(x))
		for i, elt := range x {
			var err error
			elts[i], err = FromAny(elt)
			if err != nil {
				return nil, err
			}
		}
		return ir.FromSlice(elts), nil
	case map[string]any:
		m := make(map[string]*ir.Value, len(x))
		for k, elt := range x {
			var err error
			m[k], err = FromAny(elt)
			if err != nil {
				return nil, err
			}
		}
		return ir.FromMap(m), nil
	}
	if c := Lookup(reflect.TypeOf(v)); c != nil && c.ToValue != nil {
		return c.ToValue(v)
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d)
}

// ToAny flattens a value tree into plain Go values: objects become
// maps and lose member order, undefined becomes nil.
func ToAny(node *ir.Value) any {
	switch node.Kind() {
	case ir.ObjectKind:
		members, _ := node.AsObject()
		res := make(map[string]any, len(members))
		for i := range members {
			res[members[i].Key] = ToAny(members[i].Value)
		}
		return res
	case ir.ArrayKind:
		elts, _ := node.AsArray()
		res := make([]any, len(elts))
		for i, elt := range elts {
			res[i] = ToAny(elt)
		}
		return res
	case ir.StringKind:
		s, _ := node.AsString()
		return s
	case ir.IntKind:
		i, _ := node.AsInt()
		return i
	case ir.FloatKind:
		f, _ := node.AsFloat()
		return f
	case ir.BoolKind:
		b, _ := node.AsBool()
		return b
	default:
		return nil
	}
}

// ToAnyAs converts a value tree to the registered application type t.
func ToAnyAs(node *ir.Value, t reflect.Type) (any, error) {
	if c := Lookup(t); c != nil && c.FromValue != nil {
		return c.FromValue(node)
	}
	d, err := json.Marshal(ToAny(node))
	if err != nil {
		return nil, err
	}
	res := reflect.New(t)
	if err := json.Unmarshal(d, res.Interface()); err != nil {
		return nil, err
	}
	return res.Elem().Interface(), nil
}
