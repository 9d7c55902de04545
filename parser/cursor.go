package parser

import "github.com/oarkflow/usql/token"

// eofToken is the sentinel returned once the cursor runs past the last
// real token. It has Kind == token.Invalid so no dispatch ever mistakes
// it for a real Word/Punct/literal.
var eofToken = token.Token{}

// cursor is the buffered multi-peek token cursor of spec.md §4.4. toks is
// the full token stream for one parse (tokenization happens eagerly, up
// front, so arbitrary peek-ahead is just indexing). pos is the real
// position: toks[pos] is the next token to be consumed. peekIdx is an
// offset from pos used by peekNext/resetPeekCursor without disturbing
// pos.
type cursor struct {
	toks    []token.Token
	pos     int
	peekIdx int
}

func newCursor(toks []token.Token) *cursor {
	return &cursor{toks: toks}
}

func (c *cursor) at(i int) token.Token {
	if i < 0 || i >= len(c.toks) {
		return eofToken
	}
	return c.toks[i]
}

func (c *cursor) atEOF(i int) bool {
	return i >= len(c.toks)
}

// peek is a non-consuming view of the next token.
func (c *cursor) peek() token.Token { return c.at(c.pos) }

func (c *cursor) peekIsEOF() bool { return c.atEOF(c.pos) }

// peekNext advances the peek index and returns the token there. The
// first call returns the token one past peek(); repeated calls walk
// arbitrarily far ahead.
func (c *cursor) peekNext() token.Token {
	c.peekIdx++
	return c.at(c.pos + c.peekIdx)
}

func (c *cursor) resetPeekCursor() { c.peekIdx = 0 }

// next consumes one token and resets the peek index, per the invariant
// that every next() call resets peek state.
func (c *cursor) next() token.Token {
	t := c.at(c.pos)
	if !c.atEOF(c.pos) {
		c.pos++
	}
	c.peekIdx = 0
	return t
}

func (c *cursor) nextIf(pred func(token.Token) bool) (token.Token, bool) {
	t := c.peek()
	if c.peekIsEOF() || !pred(t) {
		return token.Token{}, false
	}
	return c.next(), true
}

func (c *cursor) nextIfPunct(ch rune) (token.Token, bool) {
	return c.nextIf(func(t token.Token) bool { return t.IsPunct(ch) })
}

func (c *cursor) nextIfKeyword(kw string) (token.Token, bool) {
	return c.nextIf(func(t token.Token) bool { return t.IsKeyword(kw) })
}

func (c *cursor) isKeyword(kw string) bool {
	return !c.peekIsEOF() && c.peek().IsKeyword(kw)
}

func (c *cursor) isPunct(ch rune) bool {
	return !c.peekIsEOF() && c.peek().IsPunct(ch)
}

// atKeyword reports whether the token offset positions past the consumed
// index (0 == peek() itself) is the given keyword. It reads the buffer
// directly and leaves both the consumed and the peek index unchanged.
func (c *cursor) atKeyword(offset int, kw string) bool {
	return c.at(c.pos+offset).IsKeyword(kw)
}

func (c *cursor) atPunct(offset int, ch rune) bool {
	return c.at(c.pos + offset).IsPunct(ch)
}
