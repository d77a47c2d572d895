package patch

import (
	"testing"

	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

func mustParse(t *testing.T, doc string) *ir.Value {
	t.Helper()
	node, err := parse.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("%s: %v", doc, err)
	}
	return node
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": [1, 2]}`)
	ops := mustParse(t, `[
	  {"op": "remove", "path": "/a"},
	  {"op": "add", "path": "/b/0", "value": 0},
	  {"op": "add", "path": "/c", "value": {"d": true}}
	]`)
	res, err := Apply(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"b": [0, 1, 2], "c": {"d": true}}`)
	if !ir.Equal(res, want) {
		t.Errorf("unexpected patch result")
	}
	// inputs are untouched
	if doc.Key("a").GetIntOr(-1) != 1 {
		t.Error("apply modified the input document")
	}
}

func TestApplyBadOp(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	ops := mustParse(t, `[{"op": "remove", "path": "/missing"}]`)
	if _, err := Apply(doc, ops); err == nil {
		t.Error("remove of missing path succeeded")
	}
}

func TestMergeAndCreate(t *testing.T) {
	from := mustParse(t, `{"a": 1, "b": 2}`)
	to := mustParse(t, `{"a": 1, "c": 3}`)
	mp, err := CreateMerge(from, to)
	if err != nil {
		t.Fatal(err)
	}
	// the generated patch must carry a null delete for b
	if !mp.Key("b").IsNull() {
		t.Errorf("merge patch does not delete b: %s", mp.Kind())
	}
	res, err := Merge(from, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, to) {
		t.Error("applying the created merge patch does not reach the target")
	}
}
