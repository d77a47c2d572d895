package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Object members are stored as a linear key-value slice in first
// insertion order. Lookup is O(n); documents with pathological member
// counts should be restructured by the caller.

func (v *Value) find(key string) int {
	for i := range v.objVal {
		if v.objVal[i].Key == key {
			return i
		}
	}
	return -1
}

// Set inserts or updates a member of an object value. An existing key
// is updated in place and keeps its original position; a new key is
// appended at the end of insertion order.
func (v *Value) Set(key string, val *Value) error {
	if v.kind != ObjectKind {
		return v.badAccess(ObjectKind)
	}
	if i := v.find(key); i >= 0 {
		v.objVal[i].Value = val
		return nil
	}
	v.objVal = append(v.objVal, Member{Key: key, Value: val})
	return nil
}

// Delete removes a member of an object value, reporting whether the
// key was present.
func (v *Value) Delete(key string) bool {
	if v.kind != ObjectKind {
		return false
	}
	i := v.find(key)
	if i < 0 {
		return false
	}
	v.objVal = append(v.objVal[:i], v.objVal[i+1:]...)
	return true
}

// Keys returns the object keys in insertion order.
func (v *Value) Keys() []string {
	if v.kind != ObjectKind {
		return nil
	}
	res := make([]string, len(v.objVal))
	for i := range v.objVal {
		res[i] = v.objVal[i].Key
	}
	return res
}

// FromMap makes an object value from a Go map, ordering members by
// sorted key since Go maps carry no order of their own.
func FromMap(m map[string]*Value) *Value {
	res := &Value{kind: ObjectKind, objVal: make([]Member, 0, len(m))}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.objVal = append(res.objVal, Member{Key: key, Value: m[key]})
	}
	return res
}

// ToMap flattens an object value into a Go map, losing member order.
func ToMap(v *Value) map[string]*Value {
	if v.kind != ObjectKind {
		return nil
	}
	res := make(map[string]*Value, len(v.objVal))
	for _, m := range v.objVal {
		res[m.Key] = m.Value
	}
	return res
}

func (v *Value) badAccess(want Kind) error {
	return fmt.Errorf("%w: have %s, want %s", ErrBadAccess, v.kind, want)
}
