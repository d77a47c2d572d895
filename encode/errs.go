package encode

import "errors"

// ErrBadValue is returned for values with no representation: undefined
// nodes and NaN floats. EncodeDebugDump renders them as comments
// instead.
var ErrBadValue = errors.New("bad value")
