package jot

import (
	"io"
	"os"

	"github.com/signadot/jot-format/jot/encode"
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

// Parse reads a single document from d.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse(d, opts...)
}

// ParseFile reads a single document from the file at path.
func ParseFile(path string, opts ...parse.ParseOption) (*ir.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Encode writes node to w.
func Encode(node *ir.Value, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// String encodes node to a string.
func String(node *ir.Value, opts ...encode.EncodeOption) (string, error) {
	return encode.String(node, opts...)
}

// MustString is String panicking on unencodable values.
func MustString(node *ir.Value, opts ...encode.EncodeOption) string {
	return encode.MustString(node, opts...)
}

// Equal reports deep structural equality of two trees.
func Equal(a, b *ir.Value) bool {
	return ir.Equal(a, b)
}
