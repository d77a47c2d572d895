package textdiff

import (
	"strings"
	"testing"

	"github.com/signadot/jot-format/jot/parse"
)

func TestStrings(t *testing.T) {
	out := Strings("hello world", "hello there")
	if !strings.Contains(out, "hello ") {
		t.Errorf("common prefix lost: %q", out)
	}
	if out == "hello world" || out == "hello there" {
		t.Errorf("no diff markers: %q", out)
	}
}

func TestValues(t *testing.T) {
	from, err := parse.Parse([]byte(`{"a": 1, "b": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	to, err := parse.Parse([]byte(`{"a": 1, "b": [1, 3]}`))
	if err != nil {
		t.Fatal(err)
	}
	same, err := Values(from, from.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if same != "" {
		t.Errorf("equal trees diff to %q", same)
	}
	out, err := Values(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if out == "" {
		t.Error("unequal trees diff to empty")
	}
	if !strings.Contains(out, "3") {
		t.Errorf("inserted value missing: %q", out)
	}
}
