// Package patch applies RFC 6902 patches and RFC 7386 merge patches
// to value trees.
package patch

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/jot-format/jot/debug"
	"github.com/signadot/jot-format/jot/encode"
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/parse"
)

// Apply applies the RFC 6902 patch document ops to doc and returns the
// patched tree. Neither input is modified.
func Apply(doc, ops *ir.Value) (*ir.Value, error) {
	opsData, err := encode.String(ops)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.DecodePatch([]byte(opsData))
	if err != nil {
		return nil, err
	}
	d, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch %s with %s\n", d, opsData)
	}
	out, err := p.Apply([]byte(d))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// Merge applies the RFC 7386 merge patch mp to doc and returns the
// merged tree.
func Merge(doc, mp *ir.Value) (*ir.Value, error) {
	d, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	mpData, err := encode.String(mp)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge %s with %s\n", d, mpData)
	}
	out, err := jsonpatch.MergePatch([]byte(d), []byte(mpData))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// CreateMerge computes an RFC 7386 merge patch transforming from into
// to.
func CreateMerge(from, to *ir.Value) (*ir.Value, error) {
	fd, err := encode.String(from)
	if err != nil {
		return nil, err
	}
	td, err := encode.String(to)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch([]byte(fd), []byte(td))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}
