// Package ir defines the in-memory value tree produced by parsing loose
// JSON documents and consumed by the encoder.
//
// A Value is a tagged union: exactly one payload is active at a time, as
// reported by Kind. Arrays own their elements and objects own their
// members; a tree has no cycles and no shared children. The Undefined
// kind is a lookup sentinel, distinct from Null: well-formed parsed
// documents never store it.
package ir

// Value is one node of a value tree.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	arrVal []*Value
	objVal []Member
}

// Member is a single key-value member of an object. Members keep the
// order in which their keys were first inserted.
type Member struct {
	Key   string
	Value *Value
}

// undefined is the shared sentinel returned by failed lookups. It is
// created once and never mutated.
var undefined = &Value{}

// Kind reports which payload of v is active.
func (v *Value) Kind() Kind { return v.kind }

// Constructors.

func FromString(s string) *Value {
	return &Value{kind: StringKind, strVal: s}
}

func FromInt(i int64) *Value {
	return &Value{kind: IntKind, intVal: i}
}

func FromFloat(f float64) *Value {
	return &Value{kind: FloatKind, floatVal: f}
}

func FromBool(b bool) *Value {
	return &Value{kind: BoolKind, boolVal: b}
}

func Null() *Value {
	return &Value{kind: NullKind}
}

// NewUndefined returns a fresh undefined placeholder, distinct from the
// shared lookup sentinel.
func NewUndefined() *Value {
	return &Value{}
}

// FromSlice makes an array value owning the given elements.
func FromSlice(elts []*Value) *Value {
	return &Value{kind: ArrayKind, arrVal: elts}
}

// FromKeyVals makes an object value from members in order. A repeated
// key updates the earlier member in place without moving it.
func FromKeyVals(kvs []Member) *Value {
	res := &Value{kind: ObjectKind, objVal: make([]Member, 0, len(kvs))}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Value)
	}
	return res
}

// EmptyArray makes an empty array value.
func EmptyArray() *Value {
	return &Value{kind: ArrayKind}
}

// EmptyObject makes an empty object value.
func EmptyObject() *Value {
	return &Value{kind: ObjectKind}
}

// Kind predicates.

func (v *Value) IsUndefined() bool { return v.kind == UndefinedKind }
func (v *Value) IsDefined() bool   { return v.kind != UndefinedKind }
func (v *Value) IsNull() bool      { return v.kind == NullKind }
func (v *Value) IsBool() bool      { return v.kind == BoolKind }
func (v *Value) IsInt() bool       { return v.kind == IntKind }
func (v *Value) IsFloat() bool     { return v.kind == FloatKind }
func (v *Value) IsString() bool    { return v.kind == StringKind }
func (v *Value) IsArray() bool     { return v.kind == ArrayKind }
func (v *Value) IsObject() bool    { return v.kind == ObjectKind }

// IsNumber reports whether v is an Int or a Float.
func (v *Value) IsNumber() bool { return v.kind == IntKind || v.kind == FloatKind }

// Non-failing views.

func (v *Value) AsBool() (bool, bool) {
	if v.kind != BoolKind {
		return false, false
	}
	return v.boolVal, true
}

func (v *Value) AsInt() (int64, bool) {
	if v.kind != IntKind {
		return 0, false
	}
	return v.intVal, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.kind != FloatKind {
		return 0, false
	}
	return v.floatVal, true
}

func (v *Value) AsString() (string, bool) {
	if v.kind != StringKind {
		return "", false
	}
	return v.strVal, true
}

// AsArray returns the element slice of an array value. The slice is
// owned by v; callers must not retain it across mutations of v.
func (v *Value) AsArray() ([]*Value, bool) {
	if v.kind != ArrayKind {
		return nil, false
	}
	return v.arrVal, true
}

// AsObject returns the member slice of an object value, in insertion
// order. The slice is owned by v.
func (v *Value) AsObject() ([]Member, bool) {
	if v.kind != ObjectKind {
		return nil, false
	}
	return v.objVal, true
}

// AsNumber views an Int or Float value as a float64. Conversion from
// Int is lossy above 2^53.
func (v *Value) AsNumber() (float64, bool) {
	switch v.kind {
	case IntKind:
		return float64(v.intVal), true
	case FloatKind:
		return v.floatVal, true
	}
	return 0, false
}

// Strict getters.

func (v *Value) GetBool() (bool, error) {
	if v.kind != BoolKind {
		return false, v.badAccess(BoolKind)
	}
	return v.boolVal, nil
}

func (v *Value) GetInt() (int64, error) {
	if v.kind != IntKind {
		return 0, v.badAccess(IntKind)
	}
	return v.intVal, nil
}

func (v *Value) GetFloat() (float64, error) {
	if v.kind != FloatKind {
		return 0, v.badAccess(FloatKind)
	}
	return v.floatVal, nil
}

func (v *Value) GetString() (string, error) {
	if v.kind != StringKind {
		return "", v.badAccess(StringKind)
	}
	return v.strVal, nil
}

func (v *Value) GetArray() ([]*Value, error) {
	if v.kind != ArrayKind {
		return nil, v.badAccess(ArrayKind)
	}
	return v.arrVal, nil
}

func (v *Value) GetObject() ([]Member, error) {
	if v.kind != ObjectKind {
		return nil, v.badAccess(ObjectKind)
	}
	return v.objVal, nil
}

func (v *Value) GetNumber() (float64, error) {
	if n, ok := v.AsNumber(); ok {
		return n, nil
	}
	return 0, v.badAccess(FloatKind)
}

// Defaulted getters.

func (v *Value) GetBoolOr(def bool) bool {
	if b, ok := v.AsBool(); ok {
		return b
	}
	return def
}

func (v *Value) GetIntOr(def int64) int64 {
	if i, ok := v.AsInt(); ok {
		return i
	}
	return def
}

func (v *Value) GetFloatOr(def float64) float64 {
	if f, ok := v.AsFloat(); ok {
		return f
	}
	return def
}

func (v *Value) GetStringOr(def string) string {
	if s, ok := v.AsString(); ok {
		return s
	}
	return def
}

func (v *Value) GetNumberOr(def float64) float64 {
	if n, ok := v.AsNumber(); ok {
		return n
	}
	return def
}

// Index returns the i-th element of an array value, or the shared
// undefined sentinel when v is not an array or i is out of range.
func (v *Value) Index(i int) *Value {
	if v.kind == ArrayKind && i >= 0 && i < len(v.arrVal) {
		return v.arrVal[i]
	}
	return undefined
}

// Key returns the member value for key in an object value, or the
// shared undefined sentinel when v is not an object or has no such key.
func (v *Value) Key(key string) *Value {
	if v.kind == ObjectKind {
		if i := v.find(key); i >= 0 {
			return v.objVal[i].Value
		}
	}
	return undefined
}

// Len reports the number of children of an array or object, 0 for
// other kinds.
func (v *Value) Len() int {
	switch v.kind {
	case ArrayKind:
		return len(v.arrVal)
	case ObjectKind:
		return len(v.objVal)
	}
	return 0
}

// Append adds an element to an array value.
func (v *Value) Append(elt *Value) error {
	if v.kind != ArrayKind {
		return v.badAccess(ArrayKind)
	}
	v.arrVal = append(v.arrVal, elt)
	return nil
}

// Clone returns a deep copy of v.
func (v *Value) Clone() *Value {
	res := &Value{
		kind:     v.kind,
		boolVal:  v.boolVal,
		intVal:   v.intVal,
		floatVal: v.floatVal,
		strVal:   v.strVal,
	}
	if v.arrVal != nil {
		res.arrVal = make([]*Value, len(v.arrVal))
		for i, elt := range v.arrVal {
			res.arrVal[i] = elt.Clone()
		}
	}
	if v.objVal != nil {
		res.objVal = make([]Member, len(v.objVal))
		for i, m := range v.objVal {
			res.objVal[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
	}
	return res
}

// Visit calls f on v and, when f returns true for a container, on its
// children in order, then calls f again with isPost set.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, elt := range v.arrVal {
			if err := elt.Visit(f); err != nil {
				return err
			}
		}
		for _, m := range v.objVal {
			if err := m.Value.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(v, true)
	return err
}
