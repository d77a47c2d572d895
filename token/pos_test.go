package token

import "testing"

func TestCursorWalk(t *testing.T) {
	c := NewCursor([]byte("ab\ncd"))
	if b, ok := c.Peek(); !ok || b != 'a' {
		t.Fatalf("peek %c %v", b, ok)
	}
	if b, _ := c.Next(); b != 'a' {
		t.Fatalf("next %c", b)
	}
	if c.Eat('x') {
		t.Error("ate wrong byte")
	}
	if !c.Eat('b') {
		t.Error("did not eat b")
	}
	if !c.EatSeq("\ncd") {
		t.Error("did not eat sequence")
	}
	if !c.EOF() {
		t.Error("not at EOF")
	}
	if _, ok := c.Next(); ok {
		t.Error("next past EOF succeeded")
	}
	if c.Offset() != 5 {
		t.Errorf("offset %d", c.Offset())
	}
}

func TestEatSeqPartial(t *testing.T) {
	c := NewCursor([]byte("abc"))
	if c.EatSeq("abd") {
		t.Error("ate mismatched sequence")
	}
	if c.Offset() != 0 {
		t.Errorf("failed EatSeq moved the cursor to %d", c.Offset())
	}
	if c.EatSeq("abcd") {
		t.Error("ate sequence past EOF")
	}
}

func TestLineCol(t *testing.T) {
	c := NewCursor([]byte("ab\ncde\nf"))
	for !c.EOF() {
		c.Next()
	}
	lts := []struct {
		off, line, col int
	}{
		{off: 0, line: 0, col: 0},
		{off: 1, line: 0, col: 1},
		{off: 2, line: 0, col: 2}, // the newline itself
		{off: 3, line: 1, col: 0},
		{off: 6, line: 1, col: 3},
		{off: 7, line: 2, col: 0},
	}
	for _, lt := range lts {
		line, col := c.Doc().LineCol(lt.off)
		if line != lt.line || col != lt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d", lt.off, line, col, lt.line, lt.col)
		}
	}
}

func TestLineColNoNewlines(t *testing.T) {
	c := NewCursor([]byte("abc"))
	for !c.EOF() {
		c.Next()
	}
	if line, col := c.Doc().LineCol(2); line != 0 || col != 2 {
		t.Errorf("got %d:%d", line, col)
	}
}
