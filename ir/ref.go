package ir

type refState int

const (
	refUnbound refState = iota
	refBound
	refPendingIndex
	refPendingKey
)

// Ref is a transient cursor over a value tree. Reads through a Ref
// never fail: missing targets read as the undefined sentinel. Writes
// materialize at most one pending level, the array slot or object key
// the Ref was formed from. A Ref is meant to live for a single access
// expression; it must not be stored, and it owns nothing.
type Ref struct {
	state refState
	node  *Value // bound target
	arr   *Value // pending array parent
	idx   int    // pending array index
	obj   *Value // pending object parent
	key   string // pending object key
}

// Ref returns a bound reference to v.
func (v *Value) Ref() *Ref {
	return &Ref{state: refBound, node: v}
}

// RefIndex is shorthand for v.Ref().Index(i).
func (v *Value) RefIndex(i int) *Ref { return v.Ref().Index(i) }

// RefKey is shorthand for v.Ref().Key(key).
func (v *Value) RefKey(key string) *Ref { return v.Ref().Key(key) }

// IsBound reports whether r points at an existing value.
func (r *Ref) IsBound() bool { return r.state == refBound }

// Value returns the referenced value, or the shared undefined sentinel
// when r is not bound.
func (r *Ref) Value() *Value {
	if r.state == refBound {
		return r.node
	}
	return undefined
}

// Index forms a reference to element i of the referenced array. When
// the element exists the result is bound; when i is past the end of an
// existing array the result is a pending slot that materializes on
// Set. Indexing a non-array, a negative index, or indexing through a
// pending or unbound reference yields an unbound reference.
func (r *Ref) Index(i int) *Ref {
	if r.state != refBound || i < 0 {
		return &Ref{}
	}
	if r.node.kind != ArrayKind {
		return &Ref{}
	}
	if i < len(r.node.arrVal) {
		return &Ref{state: refBound, node: r.node.arrVal[i]}
	}
	return &Ref{state: refPendingIndex, arr: r.node, idx: i}
}

// Key forms a reference to the member for key of the referenced
// object. Present keys bind; absent keys form a pending slot that
// materializes on Set. Keying a non-object or keying through a pending
// or unbound reference yields an unbound reference.
func (r *Ref) Key(key string) *Ref {
	if r.state != refBound {
		return &Ref{}
	}
	if r.node.kind != ObjectKind {
		return &Ref{}
	}
	if i := r.node.find(key); i >= 0 {
		return &Ref{state: refBound, node: r.node.objVal[i].Value}
	}
	return &Ref{state: refPendingKey, obj: r.node, key: key}
}

// Set writes val through the reference and returns the stored node.
// The tree takes ownership of val. A bound reference overwrites its
// target in place. A pending array slot grows the parent to idx+1,
// filling intermediate slots with fresh undefined placeholders. A
// pending object key appends a member at the end of insertion order.
// Writing through an unbound reference fails with ErrBadAccess, so at
// most one missing path level materializes per assignment.
func (r *Ref) Set(val *Value) (*Value, error) {
	switch r.state {
	case refBound:
		*r.node = *val
		return r.node, nil

	case refPendingIndex:
		for len(r.arr.arrVal) <= r.idx {
			r.arr.arrVal = append(r.arr.arrVal, NewUndefined())
		}
		node := r.arr.arrVal[r.idx]
		*node = *val
		r.state, r.node = refBound, node
		r.arr, r.idx = nil, 0
		return node, nil

	case refPendingKey:
		node := &Value{}
		*node = *val
		if i := r.obj.find(r.key); i >= 0 {
			r.obj.objVal[i].Value = node
		} else {
			r.obj.objVal = append(r.obj.objVal, Member{Key: r.key, Value: node})
		}
		r.state, r.node = refBound, node
		r.obj, r.key = nil, ""
		return node, nil
	}

	return nil, ErrBadAccess
}
