package encode

import (
	"bytes"

	"github.com/signadot/jot-format/jot/ir"
)

// String encodes node to a string.
func String(node *ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is String panicking on unencodable values.
func MustString(node *ir.Value, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
