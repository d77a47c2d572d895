// Package token provides byte-level scanning support for jot documents.
//
// [Cursor] is a single-byte-lookahead cursor over an input buffer. It
// records newline offsets as it advances so that [Pos] values can map
// byte offsets to line and column lazily, without a second pass.
package token
