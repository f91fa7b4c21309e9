package lexer

import (
	"io"
	"unicode"
)

// EOF is returned by Reader.Next when the input is exhausted.
const EOF rune = -1

// Reader is the view of the input a Tokenizer sees. There is no peek: a
// tokenizer that reads too far says so through Result.Pushback.
type Reader interface {
	// Next returns the next character or EOF.
	Next() rune
	// Pos returns the position of the character most recently returned by
	// Next, or of the end of input after EOF.
	Pos() Position
}

type char struct {
	r   rune
	pos Position
}

// cursor reads runes from src and keeps every rune handed out during the
// current attempt so that any suffix of them can be pushed back.
type cursor struct {
	src io.RuneReader

	// pending holds pushed back runes; the last element is read next.
	pending []char
	// history holds the runes returned since the last commit.
	history []char

	next Position // position of the next rune taken from src
	last Position
	err  error // first non-EOF error from src
	eof  bool
}

func newCursor(src io.RuneReader) *cursor {
	start := Position{Offset: 0, Line: 1, Column: 1}
	return &cursor{src: src, next: start, last: start}
}

func (c *cursor) Next() rune {
	if n := len(c.pending); n > 0 {
		ch := c.pending[n-1]
		c.pending = c.pending[:n-1]
		c.history = append(c.history, ch)
		c.last = ch.pos
		return ch.r
	}
	if c.eof {
		c.last = c.next
		return EOF
	}

	r, _, err := c.src.ReadRune()
	if err != nil {
		if err != io.EOF {
			c.err = err
		}
		c.eof = true
		c.last = c.next
		return EOF
	}

	ch := char{r: r, pos: c.next}
	c.next.Offset++
	if r == '\n' {
		c.next.Line++
		c.next.Column = 1
	} else {
		c.next.Column++
	}
	c.history = append(c.history, ch)
	c.last = ch.pos
	return r
}

func (c *cursor) Pos() Position {
	return c.last
}

// peekPos returns the position of the rune the next call to Next would return.
func (c *cursor) peekPos() Position {
	if n := len(c.pending); n > 0 {
		return c.pending[n-1].pos
	}
	return c.next
}

// unread hands the last n runes of the current attempt back to the input.
func (c *cursor) unread(n int) bool {
	if n < 0 || n > len(c.history) {
		return false
	}
	for i := len(c.history) - 1; i >= len(c.history)-n; i-- {
		c.pending = append(c.pending, c.history[i])
	}
	c.history = c.history[:len(c.history)-n]
	return true
}

// commit forgets the current attempt and returns the runes it kept. The
// returned slice is only valid until the next call to Next.
func (c *cursor) commit() []char {
	kept := c.history
	c.history = c.history[:0]
	return kept
}

// reset drops the current attempt after handing every rune back.
func (c *cursor) reset() {
	c.unread(len(c.history))
}

// skipSpace discards whitespace and reports whether a character follows.
func (c *cursor) skipSpace() bool {
	for {
		r := c.Next()
		if r == EOF {
			c.commit()
			return false
		}
		if !unicode.IsSpace(r) {
			c.unread(1)
			c.commit()
			return true
		}
	}
}
