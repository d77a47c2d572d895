package encode

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

func testDoc() *ir.Value {
	return ir.FromKeyVals([]ir.Member{
		{Key: "a", Value: ir.FromInt(1)},
		{Key: "b", Value: ir.FromSlice([]*ir.Value{ir.FromBool(true), ir.Null()})},
	})
}

func TestEncodeCompact(t *testing.T) {
	ets := []struct {
		node *ir.Value
		want string
	}{
		{node: ir.Null(), want: `null`},
		{node: ir.FromBool(true), want: `true`},
		{node: ir.FromBool(false), want: `false`},
		{node: ir.FromInt(-42), want: `-42`},
		{node: ir.FromFloat(0.5), want: `0.5`},
		{node: ir.FromString("hello"), want: `"hello"`},
		{node: ir.EmptyArray(), want: `[]`},
		{node: ir.EmptyObject(), want: `{}`},
		{node: testDoc(), want: `{"a":1,"b":[true,null]}`},
	}
	for _, et := range ets {
		got, err := String(et.node)
		if err != nil {
			t.Errorf("%s: %v", et.want, err)
			continue
		}
		if got != et.want {
			t.Errorf("got %s, want %s", got, et.want)
		}
	}
}

func TestEncodePretty(t *testing.T) {
	want := `{
  "a": 1,
  "b": [
    true,
    null
  ]
}`
	got, err := String(testDoc(), EncodePretty(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodePrettyEmptyContainers(t *testing.T) {
	node := ir.FromKeyVals([]ir.Member{
		{Key: "a", Value: ir.EmptyArray()},
		{Key: "b", Value: ir.EmptyObject()},
	})
	want := `{
  "a": [],
  "b": {}
}`
	got, err := String(node, EncodePretty(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeStringEscapes(t *testing.T) {
	ets := []struct {
		in   string
		want string
	}{
		{in: "a\"b", want: `"a\"b"`},
		{in: `a\b`, want: `"a\\b"`},
		{in: "a/b", want: `"a\/b"`},
		{in: "a\nb\tc\rd\be\ff", want: `"a\nb\tc\rd\be\ff"`},
		{in: "\x01\x1f", want: `"\u0001\u001F"`},
		{in: "\x7f", want: `"\u007F"`},
		{in: "😃", want: `"😃"`},
	}
	for _, et := range ets {
		got, err := String(ir.FromString(et.in))
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if got != et.want {
			t.Errorf("%q: got %s, want %s", et.in, got, et.want)
		}
	}
}

func TestEncodeFloats(t *testing.T) {
	ets := []struct {
		v    float64
		opts []EncodeOption
		want string
	}{
		{v: 0.5, want: "0.5"},
		{v: 1e14, want: "1e+14"},
		{v: math.Inf(1), want: "1.0e999999999"},
		{v: math.Inf(-1), want: "-1.0e999999999"},
		{
			v:    1.23456,
			opts: []EncodeOption{EncodePrecision(3), EncodeFloatFormat(FixedFloat)},
			want: "1.235",
		},
		{
			v:    1.23456,
			opts: []EncodeOption{EncodePrecision(3), EncodeFloatFormat(ScientificFloat)},
			want: "1.235e+00",
		},
		{
			// outside the magnitude window the configured format
			// falls back to general
			v:    1234567,
			opts: []EncodeOption{EncodePrecision(3), EncodeFloatFormat(FixedFloat)},
			want: "1.23e+06",
		},
	}
	for _, et := range ets {
		got, err := String(ir.FromFloat(et.v), et.opts...)
		if err != nil {
			t.Errorf("%v: %v", et.v, err)
			continue
		}
		if got != et.want {
			t.Errorf("%v: got %s, want %s", et.v, got, et.want)
		}
	}
}

func TestEncodeBadValues(t *testing.T) {
	for _, node := range []*ir.Value{
		ir.NewUndefined(),
		ir.FromFloat(math.NaN()),
		ir.FromSlice([]*ir.Value{ir.NewUndefined()}),
	} {
		if _, err := String(node); !errors.Is(err, ErrBadValue) {
			t.Errorf("kind %s: error %v does not wrap ErrBadValue", node.Kind(), err)
		}
	}
}

func TestEncodeDebugDump(t *testing.T) {
	ets := []struct {
		node *ir.Value
		want string
	}{
		{node: ir.NewUndefined(), want: "/***  UNDEFINED  ***/ undefined /* not allowed */"},
		{node: ir.Null(), want: "/***  NULL  ***/ null"},
		{node: ir.FromBool(true), want: "/***  BOOLEAN  ***/ true"},
		{node: ir.FromInt(3), want: "/***  INTEGER  ***/ 3"},
		{node: ir.FromFloat(math.NaN()), want: "/***  FLOATING  ***/ NaN /* not allowed */"},
		{node: ir.FromString("hello"), want: `/***  STRING[5]  ***/ "hello"`},
		{node: ir.EmptyArray(), want: "/***  ARRAY[0]  ***/ []"},
		{
			node: ir.FromKeyVals([]ir.Member{{Key: "a", Value: ir.FromInt(1)}}),
			want: `/***  OBJECT[1]  ***/ {"a":/***  INTEGER  ***/ 1}`,
		},
	}
	for _, et := range ets {
		got, err := String(et.node, EncodeDebugDump(true))
		if err != nil {
			t.Errorf("%s: %v", et.want, err)
			continue
		}
		if got != et.want {
			t.Errorf("got %s, want %s", got, et.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`[1,2,3]`,
		`{"a":0.1,"b":[true,null,"x\ny"],"c":{"d":1e-14}}`,
		"\"\\u0041 unicode\"",
		`9223372036854775807`,
	}
	for _, doc := range docs {
		node, err := parse.Parse([]byte(doc))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		out, err := String(node)
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		back, err := parse.Parse([]byte(out))
		if err != nil {
			t.Fatalf("%s: reparse %s: %v", doc, out, err)
		}
		if !ir.Equal(node, back) {
			t.Errorf("%s: round trip through %s changed the document", doc, out)
		}
	}
}

func TestEncodeColorsPlain(t *testing.T) {
	// with colors disabled by the environment the colored encoding
	// must match the plain one
	plain, err := String(testDoc(), EncodePretty(true))
	if err != nil {
		t.Fatal(err)
	}
	colored, err := String(testDoc(), EncodePretty(true), EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain output")
	}
}
