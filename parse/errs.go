package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jot-format/jot/token"
)

var (
	// ErrBadFormat is the sentinel wrapped by every syntax error the
	// reader produces.
	ErrBadFormat = errors.New("bad format")

	errInternal = errors.New("internal parse error")
)

// FormatError is a syntax error at a known input position. Char holds
// the encountered byte, or -1 when the error carries no byte context;
// EOF marks end of input.
type FormatError struct {
	Reason string
	Char   int
	EOF    bool
	Pos    *token.Pos
}

func (e *FormatError) Unwrap() error { return ErrBadFormat }

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(ErrBadFormat.Error())
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.EOF {
		b.WriteString(" but encountered EOF")
	} else if e.Char >= 0 {
		b.WriteString(" but encountered ")
		if e.Char >= 0x20 && e.Char < 0x7F {
			fmt.Fprintf(&b, "'%c'", e.Char)
		} else {
			fmt.Fprintf(&b, "(char)%02x", e.Char)
		}
	}
	line, col := e.Pos.LineCol()
	fmt.Fprintf(&b, " at line %d column %d.", line+1, col+1)
	return b.String()
}
