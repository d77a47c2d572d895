package token

// Cursor walks a byte buffer with single-byte lookahead, recording
// newline offsets into its PosDoc as it goes.
type Cursor struct {
	doc *PosDoc
	i   int
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{doc: &PosDoc{d: d}}
}

// Doc returns the position document backing c. Positions taken from it
// remain valid after the cursor moves on.
func (c *Cursor) Doc() *PosDoc { return c.doc }

func (c *Cursor) EOF() bool { return c.i >= len(c.doc.d) }

// Peek returns the byte under the cursor without advancing. ok is
// false at end of input.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.EOF() {
		return 0, false
	}
	return c.doc.d[c.i], true
}

// Next returns the byte under the cursor and advances past it.
func (c *Cursor) Next() (b byte, ok bool) {
	b, ok = c.Peek()
	if ok {
		c.advance()
	}
	return b, ok
}

// Eat advances past the byte under the cursor when it equals b.
func (c *Cursor) Eat(b byte) bool {
	if cur, ok := c.Peek(); ok && cur == b {
		c.advance()
		return true
	}
	return false
}

// EatSeq advances past s when the input starts with it at the cursor,
// consuming nothing otherwise.
func (c *Cursor) EatSeq(s string) bool {
	if c.i+len(s) > len(c.doc.d) {
		return false
	}
	if string(c.doc.d[c.i:c.i+len(s)]) != s {
		return false
	}
	for range len(s) {
		c.advance()
	}
	return true
}

func (c *Cursor) advance() {
	if c.doc.d[c.i] == '\n' {
		c.doc.nl(c.i)
	}
	c.i++
}

func (c *Cursor) Offset() int { return c.i }

// Pos returns the current position. The value stays meaningful after
// the cursor advances.
func (c *Cursor) Pos() *Pos { return c.doc.Pos(c.i) }
