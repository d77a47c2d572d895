package ir

import (
	"errors"
	"testing"
)

func TestRefReadNeverFails(t *testing.T) {
	doc := FromKeyVals([]Member{
		{Key: "a", Value: FromSlice([]*Value{FromInt(1)})},
	})
	if got := doc.RefKey("a").Index(0).Value().GetIntOr(-1); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	// missing paths read as undefined, no matter how deep
	if !doc.RefKey("missing").Key("x").Index(2).Value().IsUndefined() {
		t.Error("missing path did not read as undefined")
	}
	if doc.RefKey("missing").IsBound() {
		t.Error("pending ref reports bound")
	}
}

func TestRefSetBound(t *testing.T) {
	doc := FromKeyVals([]Member{{Key: "a", Value: FromInt(1)}})
	if _, err := doc.RefKey("a").Set(FromString("x")); err != nil {
		t.Fatal(err)
	}
	if got, _ := doc.Key("a").AsString(); got != "x" {
		t.Errorf("got %q", got)
	}
}

func TestRefSetPendingKey(t *testing.T) {
	doc := EmptyObject()
	node, err := doc.RefKey("a").Set(FromInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if node.GetIntOr(-1) != 1 {
		t.Error("returned node does not hold the written value")
	}
	if doc.Key("a").GetIntOr(-1) != 1 {
		t.Error("written member not visible in parent")
	}
	keys := doc.Keys()
	if len(keys) != 1 || keys[0] != "a" {
		t.Errorf("keys %v", keys)
	}
}

func TestRefSetPendingIndexGrows(t *testing.T) {
	doc := EmptyArray()
	if _, err := doc.RefIndex(5).Set(FromString("end")); err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 6 {
		t.Fatalf("len %d, want 6", doc.Len())
	}
	for i := 0; i < 5; i++ {
		if !doc.Index(i).IsUndefined() {
			t.Errorf("filler at %d is %s, want undefined", i, doc.Index(i).Kind())
		}
	}
	if got, _ := doc.Index(5).AsString(); got != "end" {
		t.Errorf("element 5 is %q", got)
	}
	// fillers are distinct nodes, writing one leaves the others alone
	if _, err := doc.RefIndex(0).Set(FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if !doc.Index(1).IsUndefined() {
		t.Error("writing filler 0 affected filler 1")
	}
}

func TestRefSetUnbound(t *testing.T) {
	doc := EmptyObject()
	// two missing levels: only one may materialize per write
	if _, err := doc.RefKey("a").Key("b").Set(FromInt(1)); !errors.Is(err, ErrBadAccess) {
		t.Errorf("got %v, want ErrBadAccess", err)
	}
	if doc.Len() != 0 {
		t.Error("failed write modified the document")
	}
	// indexing a non-array is unbound
	leaf := FromInt(1)
	if _, err := leaf.RefIndex(0).Set(FromInt(2)); !errors.Is(err, ErrBadAccess) {
		t.Errorf("got %v, want ErrBadAccess", err)
	}
	// negative index is unbound
	arr := EmptyArray()
	if _, err := arr.RefIndex(-1).Set(FromInt(2)); !errors.Is(err, ErrBadAccess) {
		t.Errorf("got %v, want ErrBadAccess", err)
	}
}

func TestRefSetThenFollow(t *testing.T) {
	doc := EmptyObject()
	ref := doc.RefKey("a")
	if _, err := ref.Set(EmptyArray()); err != nil {
		t.Fatal(err)
	}
	// after materializing, the same ref is bound and can be followed
	if !ref.IsBound() {
		t.Fatal("ref not bound after set")
	}
	if _, err := ref.Index(0).Set(FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if doc.Key("a").Index(0).GetIntOr(-1) != 1 {
		t.Errorf("got %s", doc.Key("a").Kind())
	}
}
