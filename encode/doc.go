// Package encode serializes value trees to jot text.
//
// Output is compact by default; EncodePretty switches to two-space
// indented output with a space after each object key. Empty arrays and
// objects are always written compactly as [] and {}.
package encode
