package ir

import (
	"errors"
	"testing"
)

func TestKindPredicates(t *testing.T) {
	vts := []struct {
		v    *Value
		kind Kind
	}{
		{v: NewUndefined(), kind: UndefinedKind},
		{v: Null(), kind: NullKind},
		{v: FromBool(true), kind: BoolKind},
		{v: FromInt(3), kind: IntKind},
		{v: FromFloat(0.5), kind: FloatKind},
		{v: FromString("x"), kind: StringKind},
		{v: EmptyArray(), kind: ArrayKind},
		{v: EmptyObject(), kind: ObjectKind},
	}
	for _, vt := range vts {
		if vt.v.Kind() != vt.kind {
			t.Errorf("got %s, want %s", vt.v.Kind(), vt.kind)
		}
	}
}

func TestGetters(t *testing.T) {
	v := FromInt(42)
	if i, err := v.GetInt(); err != nil || i != 42 {
		t.Errorf("GetInt: %d, %v", i, err)
	}
	if _, err := v.GetString(); !errors.Is(err, ErrBadAccess) {
		t.Errorf("GetString on int: %v", err)
	}
	if s := v.GetStringOr("d"); s != "d" {
		t.Errorf("GetStringOr: %s", s)
	}
	if n, err := v.GetNumber(); err != nil || n != 42 {
		t.Errorf("GetNumber: %v, %v", n, err)
	}
}

func TestLookupSentinel(t *testing.T) {
	obj := FromKeyVals([]Member{{Key: "a", Value: FromInt(1)}})
	if !obj.Key("missing").IsUndefined() {
		t.Error("missing key lookup is not undefined")
	}
	if !obj.Index(0).IsUndefined() {
		t.Error("index of object is not undefined")
	}
	arr := FromSlice([]*Value{FromInt(1)})
	if !arr.Index(3).IsUndefined() {
		t.Error("out of range index is not undefined")
	}
	if !arr.Index(-1).IsUndefined() {
		t.Error("negative index is not undefined")
	}
	// lookups chain without panicking
	if !obj.Key("missing").Key("x").Index(0).IsUndefined() {
		t.Error("chained lookup is not undefined")
	}
}

func TestObjectSetDelete(t *testing.T) {
	obj := EmptyObject()
	obj.Set("a", FromInt(1))
	obj.Set("b", FromInt(2))
	obj.Set("a", FromInt(3)) // keeps position
	keys := obj.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("keys %v", keys)
	}
	if obj.Key("a").GetIntOr(-1) != 3 {
		t.Error("update did not take")
	}
	if !obj.Delete("a") {
		t.Error("delete reported missing")
	}
	if obj.Delete("a") {
		t.Error("second delete reported present")
	}
	if obj.Len() != 1 {
		t.Errorf("len %d", obj.Len())
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]Member{
		{Key: "a", Value: FromSlice([]*Value{FromInt(1), FromString("x")})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone not equal")
	}
	cp.Key("a").Append(FromInt(2))
	if Equal(orig, cp) {
		t.Error("mutation of clone affected original")
	}
}

func TestEqual(t *testing.T) {
	a := FromKeyVals([]Member{
		{Key: "x", Value: FromInt(1)},
		{Key: "y", Value: FromInt(2)},
	})
	b := FromKeyVals([]Member{
		{Key: "y", Value: FromInt(2)},
		{Key: "x", Value: FromInt(1)},
	})
	if Equal(a, b) {
		t.Error("objects with different member order compare equal")
	}
	if !Equal(a, a.Clone()) {
		t.Error("clone not equal")
	}
	if Equal(FromInt(1), FromFloat(1)) {
		t.Error("int and float compare equal")
	}
	if !Equal(Null(), Null()) {
		t.Error("nulls unequal")
	}
}

func TestVisitOrder(t *testing.T) {
	doc := FromKeyVals([]Member{
		{Key: "a", Value: FromSlice([]*Value{FromInt(1), FromInt(2)})},
		{Key: "b", Value: FromInt(3)},
	})
	var pre, post int
	err := doc.Visit(func(v *Value, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if pre != 5 || post != 5 {
		t.Errorf("pre %d post %d, want 5 and 5", pre, post)
	}
}
