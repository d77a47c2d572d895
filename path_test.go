package jot

import (
	"strings"
	"testing"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  "null",
	},
	{
		Path: "$.f",
		Doc:  `{"f": 1}`,
		Res:  "1",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  "[1,2,3]",
	},
	{
		Path: "$.a.b",
		Doc:  `{"a": {"b": "x"}}`,
		Res:  `"x"`,
	},
	{
		Path: "$.a[1].b",
		Doc:  `{"a": [null, {"b": true}]}`,
		Res:  "true",
	},
	{
		Path: "$.'dotted.key'",
		Doc:  `{"dotted.key": 9}`,
		Res:  "9",
	},
	{
		Path:  "$[*]",
		Doc:   "[1,2]",
		Res:   "1\n2",
		NoGet: true,
	},
	{
		Path:  "$[*].a",
		Doc:   `[{"a": 1}, {"b": 2}, {"a": 3}]`,
		Res:   "1\n3",
		NoGet: true,
	},
	{
		Path:  "$...b",
		Doc:   `{"a": {"b": 1}, "b": 2}`,
		Res:   "2\n1",
		NoGet: true,
	},
}

func TestGetPath(t *testing.T) {
	for i := range pathTests {
		pt := &pathTests[i]
		if pt.NoGet {
			continue
		}
		doc, err := Parse([]byte(pt.Doc))
		if err != nil {
			t.Fatalf("doc %s: %v", pt.Doc, err)
		}
		res, err := doc.GetPath(pt.Path)
		if err != nil {
			t.Errorf("get %s in %s: %v", pt.Path, pt.Doc, err)
			continue
		}
		if res == nil {
			t.Errorf("get %s in %s: no result", pt.Path, pt.Doc)
			continue
		}
		if got := MustString(res); got != pt.Res {
			t.Errorf("get %s in %s: got %s, want %s", pt.Path, pt.Doc, got, pt.Res)
		}
	}
}

func TestListPath(t *testing.T) {
	for i := range pathTests {
		pt := &pathTests[i]
		doc, err := Parse([]byte(pt.Doc))
		if err != nil {
			t.Fatalf("doc %s: %v", pt.Doc, err)
		}
		res, err := doc.ListPath(nil, pt.Path)
		if err != nil {
			t.Errorf("list %s in %s: %v", pt.Path, pt.Doc, err)
			continue
		}
		strs := make([]string, len(res))
		for j, node := range res {
			strs[j] = MustString(node)
		}
		if got := strings.Join(strs, "\n"); got != pt.Res {
			t.Errorf("list %s in %s: got %s, want %s", pt.Path, pt.Doc, got, pt.Res)
		}
	}
}

func TestBadPath(t *testing.T) {
	doc, err := Parse([]byte(`{"a": {"b": 1}}`))
	if err != nil {
		t.Fatal(err)
	}
	// a subtree '..' must be followed by a full step
	for _, path := range []string{"", "a.b", "$..b", "$.", "$[x]", "$[1"} {
		if _, err := doc.ListPath(nil, path); err == nil {
			t.Errorf("path %q accepted", path)
		}
	}
}

func TestGetPathMissingField(t *testing.T) {
	doc, err := Parse([]byte(`{"a": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	res, err := doc.GetPath("$.b")
	if err != nil {
		t.Fatal(err)
	}
	if res != nil {
		t.Errorf("got %s, want no result", MustString(res))
	}
}
