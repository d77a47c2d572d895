package jot

import (
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/patch"
	"github.com/signadot/jot-format/jot/textdiff"
)

// Diff renders a colored text diff of two trees, or the empty string
// when they are equal.
func Diff(from, to *ir.Value) (string, error) {
	return textdiff.Values(from, to)
}

// Patch applies an RFC 6902 patch document to doc.
func Patch(doc, ops *ir.Value) (*ir.Value, error) {
	return patch.Apply(doc, ops)
}

// MergePatch applies an RFC 7386 merge patch to doc.
func MergePatch(doc, mp *ir.Value) (*ir.Value, error) {
	return patch.Merge(doc, mp)
}
