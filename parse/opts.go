package parse

import (
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/token"
)

// Flags select which loose extensions the reader accepts on top of the
// strict document syntax.
type Flags uint

const (
	AllowUTF8BOM Flags = 1 << iota
	AllowUnescapedSlash
	AllowComments
	AllowTrailingCommas
	AllowUnquotedKeys
	AllowPlusSign
)

const (
	// DefaultFlags matches what well-behaved producers emit in practice.
	DefaultFlags = AllowUTF8BOM | AllowUnescapedSlash

	// AllFlags enables every loose extension.
	AllFlags = AllowUTF8BOM | AllowUnescapedSlash | AllowComments |
		AllowTrailingCommas | AllowUnquotedKeys | AllowPlusSign
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

type parseOpts struct {
	flags     Flags
	positions map[*ir.Value]*token.Pos
}

type ParseOption func(*parseOpts)

func ParseFlags(f Flags) ParseOption {
	return func(o *parseOpts) { o.flags = f }
}

// ParseStrict disables all loose extensions, including the defaults.
func ParseStrict() ParseOption {
	return ParseFlags(0)
}

// ParseLoose enables all loose extensions.
func ParseLoose() ParseOption {
	return ParseFlags(AllFlags)
}

// ParsePositions records the start position of every parsed value into
// m, keyed by node identity.
func ParsePositions(m map[*ir.Value]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
// This allows consumers to access position information without
// threading it separately.
func GetPositions(opts ...ParseOption) map[*ir.Value]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
