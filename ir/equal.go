package ir

// Equal reports deep structural equality: same kind and same payload,
// with arrays compared element-wise and objects compared member-wise in
// stored order.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case UndefinedKind, NullKind:
		return true
	case BoolKind:
		return a.boolVal == b.boolVal
	case IntKind:
		return a.intVal == b.intVal
	case FloatKind:
		return a.floatVal == b.floatVal
	case StringKind:
		return a.strVal == b.strVal
	case ArrayKind:
		if len(a.arrVal) != len(b.arrVal) {
			return false
		}
		for i := range a.arrVal {
			if !Equal(a.arrVal[i], b.arrVal[i]) {
				return false
			}
		}
		return true
	case ObjectKind:
		if len(a.objVal) != len(b.objVal) {
			return false
		}
		for i := range a.objVal {
			if a.objVal[i].Key != b.objVal[i].Key {
				return false
			}
			if !Equal(a.objVal[i].Value, b.objVal[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports deep structural equality with o.
func (v *Value) Equal(o *Value) bool { return Equal(v, o) }
