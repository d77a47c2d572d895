package encode

import "github.com/signadot/jot-format/jot/ir"

// FloatFormat selects how finite floating point values are rendered.
type FloatFormat int

const (
	GeneralFloat FloatFormat = iota
	FixedFloat
	ScientificFloat
)

type EncState struct {
	depth, indent int
	pretty        bool
	debugDump     bool

	floatFormat FloatFormat
	// precision is a significant digit count, or -1 for the shortest
	// representation that round-trips.
	precision int

	Color func(ir.Kind, ColorAttr, string) string
}

type EncodeOption func(*EncState)

func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodeDebugDump prefixes every element with a kind comment and lets
// otherwise unencodable values through for inspection.
func EncodeDebugDump(v bool) EncodeOption {
	return func(es *EncState) { es.debugDump = v }
}

func EncodeFloatFormat(f FloatFormat) EncodeOption {
	return func(es *EncState) { es.floatFormat = f }
}

// EncodePrecision sets the floating point precision, clamped to
// [0, 64] significant digits.
func EncodePrecision(p int) EncodeOption {
	return func(es *EncState) { es.precision = min(max(p, 0), 64) }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// Depth sets the starting indentation depth for pretty output.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
