package encode

import (
	"fmt"
	"strings"
)

// escapeTable maps each byte to its escaped form, or "" for bytes that
// pass through unchanged. Escaping is byte-wise, so multi-byte UTF-8
// sequences pass through as-is.
var escapeTable = func() (t [256]string) {
	for c := 0; c < 0x20; c++ {
		t[c] = fmt.Sprintf(`\u%04X`, c)
	}
	t['\b'] = `\b`
	t['\t'] = `\t`
	t['\n'] = `\n`
	t['\f'] = `\f`
	t['\r'] = `\r`
	t['"'] = `\"`
	t['/'] = `\/`
	t['\\'] = `\\`
	t[0x7F] = `\u007F`
	return t
}()

func quoteString(v string) string {
	var b strings.Builder
	b.Grow(len(v) + 2)
	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if e := escapeTable[v[i]]; e != "" {
			b.WriteString(e)
		} else {
			b.WriteByte(v[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}
