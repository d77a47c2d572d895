// Package jot reads, writes, and manipulates jot documents: JSON plus
// a set of optional loose extensions (comments, trailing commas,
// unquoted object keys, numbers with a leading plus sign).
//
// The root package bundles the common entry points; the subpackages
// hold the machinery: ir for the value tree, parse for reading, encode
// for writing, eval for conversions and queries, patch for RFC 6902
// and 7386 patching, and textdiff for human readable diffs.
package jot
