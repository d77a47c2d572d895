package parse

import (
	"errors"
	"math"
	"strconv"

	"github.com/signadot/jot-format/jot/ir"
)

// Number digits are accumulated into a bounded decimal buffer. The
// integer region holds up to 48 digits and the fraction region up to
// 64; digits past a region are dropped and accounted for in a
// saturating exponent offset, so arbitrarily long inputs parse in
// constant space. Values that survive with a zero offset and no
// fraction or exponent are tried as int64 first, everything else goes
// through the floating point path.
const (
	integerLimit  = 48
	fractionLimit = 64
	decimalLimit  = 128
)

func isDigit(c int) bool { return c >= '0' && c <= '9' }

func (p *parser) readNumber() (*ir.Value, error) {
	buf := make([]byte, 0, decimalLimit)
	var expOffset int64
	integerType := true

	// integer part
	if p.cur.Eat('-') {
		buf = append(buf, '-')
	}
	if p.opts.flags.Has(AllowPlusSign) {
		p.cur.Eat('+') // ignore plus sign
	}

	if p.cur.Eat('0') {
		buf = append(buf, '0') // leading zeros are not allowed
	} else if isDigit(p.peekc()) {
		for isDigit(p.peekc()) {
			if len(buf) < integerLimit {
				c, _ := p.cur.Next()
				buf = append(buf, c)
			} else if expOffset < math.MaxInt64 {
				expOffset++ // drop digit
				p.cur.Next()
			} else {
				return nil, p.badFormatNoChar("invalid number format: too long integer sequence")
			}
		}
	} else {
		return nil, p.badFormat("invalid number format: expected a digit")
	}

	// fraction part
	if p.cur.Eat('.') {
		buf = append(buf, '.')
		integerType = false

		if !isDigit(p.peekc()) {
			return nil, p.badFormat("invalid number format: expected a digit")
		}

		// when the integer part is zero, drop the leading fraction
		// zeros into the exponent offset ("-0.0000...ddd")
		if buf[0] == '0' || (buf[0] == '-' && buf[1] == '0') {
			for p.peekc() == '0' {
				if expOffset > math.MinInt64 {
					expOffset--
					p.cur.Next()
				} else {
					return nil, p.badFormatNoChar("invalid number format: too long integer sequence")
				}
			}
		}

		for isDigit(p.peekc()) {
			if len(buf) < fractionLimit {
				c, _ := p.cur.Next()
				buf = append(buf, c)
			} else {
				p.cur.Next() // drop digit
			}
		}
	}

	// exponent part
	if c := p.peekc(); c == 'e' || c == 'E' {
		p.cur.Next()
		integerType = false

		expBuf := make([]byte, 0, 32)

		if p.cur.Eat('-') {
			expBuf = append(expBuf, '-')
		} else {
			p.cur.Eat('+') // drop '+'
		}

		if !isDigit(p.peekc()) {
			return nil, p.badFormat("invalid number format: expected a digit")
		}
		for isDigit(p.peekc()) {
			if len(expBuf) < cap(expBuf) {
				c, _ := p.cur.Next()
				expBuf = append(expBuf, c)
			} else {
				p.cur.Next() // drop digit, it must overflow anyway
			}
		}

		expValue, err := strconv.ParseInt(string(expBuf), 10, 64)
		switch {
		case err == nil:
			expOffset = addSat(expOffset, expValue)
		case errors.Is(err, strconv.ErrRange):
			if expBuf[0] == '-' {
				expOffset = math.MinInt64
			} else {
				expOffset = math.MaxInt64
			}
		default:
			return nil, p.badFormatNoChar("invalid number format: unexpected parse error")
		}
	}

	if expOffset != 0 {
		integerType = false
		buf = append(buf, 'e')
		buf = strconv.AppendInt(buf, expOffset, 10)
	}

	if integerType {
		if i, err := strconv.ParseInt(string(buf), 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		// does not fit in int64, fall through to floating
	}

	f, err := strconv.ParseFloat(string(buf), 64)
	if err == nil {
		return ir.FromFloat(f), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		neg := buf[0] == '-'
		if expOffset >= 0 { // overflow
			if neg {
				return ir.FromFloat(math.Inf(-1)), nil
			}
			return ir.FromFloat(math.Inf(1)), nil
		}
		// underflow
		if neg {
			return ir.FromFloat(math.Copysign(0, -1)), nil
		}
		return ir.FromFloat(0), nil
	}
	return nil, p.badFormatNoChar("invalid number format: failed to parse")
}

func addSat(a, b int64) int64 {
	if a > 0 && b > math.MaxInt64-a {
		return math.MaxInt64
	}
	if a < 0 && b < math.MinInt64-a {
		return math.MinInt64
	}
	return a + b
}
