package jot

import (
	"testing"
)

type matchTest struct {
	in    string
	match string
	res   bool
}

var matchTests = []matchTest{
	{
		in:    `1`,
		match: `1`,
		res:   true,
	},
	{
		in:    `0`,
		match: `1`,
		res:   false,
	},
	{
		in:    `1`,
		match: `1.0`,
		res:   false,
	},
	{
		in:    `"a"`,
		match: `"a"`,
		res:   true,
	},
	{
		in:    `"a"`,
		match: `"b"`,
		res:   false,
	},
	{
		in:    `[1, 2]`,
		match: `[1, 2]`,
		res:   true,
	},
	{
		in:    `[1, 2]`,
		match: `[1]`,
		res:   false,
	},
	{
		in:    `[1, 2]`,
		match: `[1, null]`,
		res:   true,
	},
	{
		in:    `{"a": 1, "b": 2}`,
		match: `{"a": 1}`,
		res:   true,
	},
	{
		in:    `{"a": 1, "b": 2}`,
		match: `{"a": 2}`,
		res:   false,
	},
	{
		in:    `{"a": 1, "b": 2}`,
		match: `{"c": 1}`,
		res:   false,
	},
	{
		in:    `{"a": {"b": [1, 2]}}`,
		match: `{"a": {"b": [null, 2]}}`,
		res:   true,
	},
	{
		in:    `{"a": 1}`,
		match: `null`,
		res:   true,
	},
	{
		in:    `{"a": 1}`,
		match: `[1]`,
		res:   false,
	},
}

func TestMatch(t *testing.T) {
	for i := range matchTests {
		mt := &matchTests[i]
		doc, err := Parse([]byte(mt.in))
		if err != nil {
			t.Fatalf("doc %s: %v", mt.in, err)
		}
		match, err := Parse([]byte(mt.match))
		if err != nil {
			t.Fatalf("match %s: %v", mt.match, err)
		}
		res, err := Match(doc, match)
		if err != nil {
			t.Errorf("match %s against %s: %v", mt.match, mt.in, err)
			continue
		}
		if res != mt.res {
			t.Errorf("match %s against %s: got %v, want %v", mt.match, mt.in, res, mt.res)
		}
	}
}

func TestTrim(t *testing.T) {
	tts := []struct {
		match string
		doc   string
		want  string
	}{
		{
			match: `{"a": null}`,
			doc:   `{"a": 1, "b": 2}`,
			want:  `{"a":1}`,
		},
		{
			match: `{"a": {"c": null}}`,
			doc:   `{"a": {"c": 3, "d": 4}, "b": 2}`,
			want:  `{"a":{"c":3}}`,
		},
		{
			match: `[2]`,
			doc:   `[1, 2, 3]`,
			want:  `[2]`,
		},
		{
			match: `7`,
			doc:   `7`,
			want:  `7`,
		},
	}
	for _, tt := range tts {
		match, err := Parse([]byte(tt.match))
		if err != nil {
			t.Fatal(err)
		}
		doc, err := Parse([]byte(tt.doc))
		if err != nil {
			t.Fatal(err)
		}
		got := MustString(Trim(match, doc))
		if got != tt.want {
			t.Errorf("trim %s by %s: got %s, want %s", tt.doc, tt.match, got, tt.want)
		}
	}
}
