// Package eval bridges value trees to and from Go values, other
// serialization formats, and expression evaluation.
//
// [FromAny] and [ToAny] convert between trees and plain Go values,
// consulting the converter registry for application types. [Query]
// runs an expr-lang expression against a document. [ExpandString] and
// [ExpandEnv] interpolate $[...] expressions inside strings.
package eval
