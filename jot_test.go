package jot

import (
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[true,null,"x"],"c":{"d":0.25}}`,
		`[]`,
		`{"deep":{"deeper":{"deepest":[1,2,3]}}}`,
	}
	for _, doc := range docs {
		node, err := Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		out := MustString(node)
		if out != doc {
			t.Errorf("got %s, want %s", out, doc)
		}
		back, err := Parse([]byte(out))
		if err != nil {
			t.Fatalf("%s: %v", out, err)
		}
		if !Equal(node, back) {
			t.Errorf("%s: reparse changed the document", doc)
		}
	}
}

func TestDiff(t *testing.T) {
	a, err := Parse([]byte(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse([]byte(`{"a": 1, "b": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	same, err := Diff(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("diff of equal trees: got %q, want empty", same)
	}
	diff, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if diff == "" {
		t.Error("diff of unequal trees is empty")
	}
}

func TestPatch(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	ops, err := Parse([]byte(`[
	  {"op": "replace", "path": "/a", "value": 7},
	  {"op": "add", "path": "/b/-", "value": 3}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Patch(doc, ops)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Parse([]byte(`{"a": 7, "b": [1, 2, 3]}`))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(res, want) {
		t.Errorf("got %s, want %s", MustString(res), MustString(want))
	}
}

func TestMergePatch(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1, "b": 2}`))
	if err != nil {
		t.Fatal(err)
	}
	mp, err := Parse([]byte(`{"b": null, "c": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := MergePatch(doc, mp)
	if err != nil {
		t.Fatal(err)
	}
	out := MustString(res)
	if strings.Contains(out, `"b"`) {
		t.Errorf("merge patch did not delete b: %s", out)
	}
	if res.Key("a").GetIntOr(-1) != 1 || res.Key("c").GetIntOr(-1) != 3 {
		t.Errorf("unexpected merge result %s", out)
	}
}
