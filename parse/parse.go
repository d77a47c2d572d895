// Package parse provides jot document parsing support.
package parse

import (
	"github.com/signadot/jot-format/jot/debug"
	"github.com/signadot/jot-format/jot/ir"
	"github.com/signadot/jot-format/jot/token"
)

const eof = -1

// Parse reads a single document from d. Input after the top-level
// element is an error unless it is whitespace, or comments when
// comments are enabled.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{flags: DefaultFlags}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{cur: token.NewCursor(d), opts: pOpts}
	if err := p.eatBOM(); err != nil {
		return nil, err
	}
	p.eatWhitespace()
	res, err := p.readElement()
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v\n", err)
		}
		return nil, err
	}
	p.eatWhitespace()
	if !p.cur.EOF() {
		return nil, p.badFormat("expected end of input")
	}
	return res, nil
}

type parser struct {
	cur  *token.Cursor
	opts *parseOpts
}

func (p *parser) peekc() int {
	if b, ok := p.cur.Peek(); ok {
		return int(b)
	}
	return eof
}

func (p *parser) badFormat(reason string) error {
	e := &FormatError{Reason: reason, Pos: p.cur.Pos()}
	if c := p.peekc(); c == eof {
		e.EOF, e.Char = true, eof
	} else {
		e.Char = c
	}
	return e
}

func (p *parser) badFormatNoChar(reason string) error {
	return &FormatError{Reason: reason, Char: eof, Pos: p.cur.Pos()}
}

func (p *parser) trackPos(node *ir.Value, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) readElement() (*ir.Value, error) {
	pos := p.cur.Pos()
	res, err := p.readElementValue()
	if err != nil {
		return nil, err
	}
	p.trackPos(res, pos)
	return res, nil
}

func (p *parser) readElementValue() (*ir.Value, error) {
	switch p.peekc() {
	case 'n':
		if err := p.readKeyword("null"); err != nil {
			return nil, err
		}
		return ir.Null(), nil

	case 't':
		if err := p.readKeyword("true"); err != nil {
			return nil, err
		}
		return ir.FromBool(true), nil

	case 'f':
		if err := p.readKeyword("false"); err != nil {
			return nil, err
		}
		return ir.FromBool(false), nil

	case '+', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return p.readNumber()

	case '"':
		return p.readString()

	case '[':
		return p.readArray()

	case '{':
		return p.readObject()
	}

	return nil, p.badFormat("invalid document format: expected an element")
}

func (p *parser) readKeyword(kw string) error {
	for i := 0; i < len(kw); i++ {
		if !p.cur.Eat(kw[i]) {
			return p.badFormat("invalid '" + kw + "' literal: expected '" + string(kw[i]) + "'")
		}
	}
	return nil
}

func (p *parser) readString() (*ir.Value, error) {
	if !p.cur.Eat('"') {
		return nil, errInternal
	}
	var ret []byte
	for {
		c := p.peekc()
		switch {
		case c == eof:
			return nil, p.badFormat("invalid string format: unexpected eof")

		case c == '"':
			p.cur.Next()
			return ir.FromString(string(ret)), nil

		case c == '\\':
			p.cur.Next()
			var err error
			ret, err = p.readEscape(ret)
			if err != nil {
				return nil, err
			}

		case c < 0x20 || c == 0x7F:
			return nil, p.badFormat("invalid string format: control character is not allowed")

		case c == '/' && !p.opts.flags.Has(AllowUnescapedSlash):
			return nil, p.badFormatNoChar("invalid string format: unescaped '/' is not allowed")

		default:
			ret = append(ret, byte(c))
			p.cur.Next()
		}
	}
}

func (p *parser) readEscape(ret []byte) ([]byte, error) {
	switch p.peekc() {
	case 'n':
		ret = append(ret, '\n')
	case 't':
		ret = append(ret, '\t')
	case 'b':
		ret = append(ret, '\b')
	case 'f':
		ret = append(ret, '\f')
	case 'r':
		ret = append(ret, '\r')
	case '\\':
		ret = append(ret, '\\')
	case '/':
		ret = append(ret, '/')
	case '"':
		ret = append(ret, '"')
	case '\'':
		ret = append(ret, '\'')
	case 'u':
		p.cur.Next()
		return p.readUnicodeEscape(ret)
	default:
		return nil, p.badFormatNoChar("invalid string format: invalid escape sequence")
	}
	p.cur.Next()
	return ret, nil
}

// readUnicodeEscape decodes \uXXXX with the leading \u already
// consumed, re-encoding the code point as UTF-8. Surrogate halves must
// come in pairs; a reversed pair is tolerated and put back in order.
func (p *parser) readUnicodeEscape(ret []byte) ([]byte, error) {
	code, err := p.readHex4()
	if err != nil {
		return nil, err
	}
	switch {
	case code < 0x80:
		ret = append(ret, byte(code))

	case code < 0x800:
		ret = append(ret,
			byte(code>>6&0x1F|0xC0),
			byte(code&0x3F|0x80))

	case code&0xF800 == 0xD800:
		if !p.cur.Eat('\\') {
			return nil, p.badFormat("invalid string format: expected surrogate pair")
		}
		if !p.cur.Eat('u') {
			return nil, p.badFormat("invalid string format: expected surrogate pair")
		}
		code2, err := p.readHex4()
		if err != nil {
			return nil, err
		}
		if code&0xFC00 == 0xDC00 && code2&0xFC00 == 0xD800 {
			code, code2 = code2, code
		}
		if code&0xFC00 == 0xD800 && code2&0xFC00 == 0xDC00 {
			code = (code&0x3FF)<<10 | code2&0x3FF
			code += 0x10000
		} else {
			return nil, p.badFormatNoChar("invalid string format: invalid surrogate pair sequence")
		}
		ret = append(ret,
			byte(code>>18&0x07|0xF0),
			byte(code>>12&0x3F|0x80),
			byte(code>>6&0x3F|0x80),
			byte(code&0x3F|0x80))

	default:
		ret = append(ret,
			byte(code>>12&0x0F|0xE0),
			byte(code>>6&0x3F|0x80),
			byte(code&0x3F|0x80))
	}
	return ret, nil
}

func (p *parser) readHex4() (int, error) {
	code := 0
	for range 4 {
		c := p.peekc()
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		default:
			return 0, p.badFormat(`invalid string format: expected hexadecimal digit for \u????`)
		}
		p.cur.Next()
		code = code<<4 | d
	}
	return code, nil
}

func (p *parser) readArray() (*ir.Value, error) {
	if !p.cur.Eat('[') {
		return nil, errInternal
	}

	res := ir.EmptyArray()

	p.eatWhitespace()

	if p.cur.Eat(']') {
		return res, nil
	}

	for {
		elt, err := p.readElement()
		if err != nil {
			return nil, err
		}
		res.Append(elt)

		p.eatWhitespace()

		if p.cur.Eat(',') {
			p.eatWhitespace()
			if p.opts.flags.Has(AllowTrailingCommas) && p.cur.Eat(']') {
				break
			} else if p.peekc() == ']' {
				return nil, p.badFormat("invalid array format: expected an element (trailing comma not allowed)")
			}
		} else if p.cur.Eat(']') {
			break
		} else {
			return nil, p.badFormat("invalid array format: ',' or ']' expected")
		}
	}

	return res, nil
}

func (p *parser) readObject() (*ir.Value, error) {
	if !p.cur.Eat('{') {
		return nil, errInternal
	}

	res := ir.EmptyObject()

	p.eatWhitespace()

	if p.cur.Eat('}') {
		return res, nil
	}

	for {
		key, err := p.readObjectKey()
		if err != nil {
			return nil, err
		}

		p.eatWhitespace()

		if !p.cur.Eat(':') {
			return nil, p.badFormat("invalid object format: expected a ':'")
		}

		p.eatWhitespace()

		val, err := p.readElement()
		if err != nil {
			return nil, err
		}
		// A repeated key keeps its first position and takes the last
		// value.
		res.Set(key, val)

		p.eatWhitespace()

		if p.cur.Eat(',') {
			p.eatWhitespace()
			if p.opts.flags.Has(AllowTrailingCommas) && p.cur.Eat('}') {
				break
			} else if p.peekc() == '}' {
				return nil, p.badFormat("invalid object format: expected an element (trailing comma not allowed)")
			}
		} else if p.cur.Eat('}') {
			break
		} else {
			return nil, p.badFormat("invalid object format: expected ',' or '}'")
		}
	}

	return res, nil
}

func (p *parser) readObjectKey() (string, error) {
	if p.peekc() == '"' {
		k, err := p.readString()
		if err != nil {
			return "", err
		}
		s, _ := k.AsString()
		return s, nil
	}
	if p.opts.flags.Has(AllowUnquotedKeys) {
		var key []byte
		for c := p.peekc(); c != eof && c > ' ' && c != ':'; c = p.peekc() {
			key = append(key, byte(c))
			p.cur.Next()
		}
		return string(key), nil
	}
	return "", p.badFormat("invalid object format: expected object key")
}

func (p *parser) eatBOM() error {
	if p.opts.flags.Has(AllowUTF8BOM) && p.cur.Eat(0xEF) {
		if !p.cur.Eat(0xBB) {
			return p.badFormat("invalid document format: UTF-8 BOM sequence expected... 0xBB")
		}
		if !p.cur.Eat(0xBF) {
			return p.badFormat("invalid document format: UTF-8 BOM sequence expected... 0xBF")
		}
	} else if p.cur.Eat(0xEF) {
		return p.badFormat("invalid document format: expected an element. (UTF-8 BOM not allowed)")
	}
	return nil
}

func (p *parser) eatWhitespace() {
	for {
		for {
			c := p.peekc()
			if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
				p.cur.Next()
				continue
			}
			break
		}

		if p.opts.flags.Has(AllowComments) && p.cur.Eat('/') {
			if p.cur.Eat('*') { // block comment
				for !p.cur.EOF() {
					c, _ := p.cur.Next()
					if c == '*' && p.cur.Eat('/') {
						break
					}
				}
			} else if p.cur.Eat('/') { // line comment
				for !p.cur.EOF() {
					c, _ := p.cur.Next()
					if c == '\n' {
						break
					}
				}
			}
			continue
		}

		break
	}
}
