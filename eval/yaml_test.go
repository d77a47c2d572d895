package eval

import (
	"testing"

	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

func TestFromYAML(t *testing.T) {
	node, err := FromYAML([]byte("a:\n  - 1\n  - two\nb: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Key("a").Index(0).GetIntOr(-1) != 1 {
		t.Errorf("a[0] kind %s", node.Key("a").Index(0).Kind())
	}
	if node.Key("a").Index(1).GetStringOr("") != "two" {
		t.Errorf("a[1] kind %s", node.Key("a").Index(1).Kind())
	}
	if !node.Key("b").GetBoolOr(false) {
		t.Error("b lost")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	orig, err := parse.Parse([]byte(`{"a": [1, "x"], "b": {"c": null}}`))
	if err != nil {
		t.Fatal(err)
	}
	d, err := ToYAML(orig)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(orig, back) {
		t.Errorf("round trip changed the tree:\n%s", d)
	}
}
