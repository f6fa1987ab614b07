package parser

import "github.com/elaralang/elara/internal/compiler/token"

// Cursor walks a token slice front to back. It never copies or mutates the
// slice; the caller must not modify it while the cursor is in use.
type Cursor struct {
	tokens     []token.Token
	pos        int
	pushedBack bool
}

func NewCursor(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next consumes and returns the next token. It fails with
// UnexpectedEndOfInput once the stream is exhausted.
func (c *Cursor) Next() (token.Token, error) {
	if c.pos >= len(c.tokens) {
		return token.Token{}, unexpectedEnd(c.last(), "unexpected end of input")
	}
	tok := c.tokens[c.pos]
	c.pos++
	c.pushedBack = false
	return tok, nil
}

// Peek returns the next token without consuming it; ok is false when the
// stream is exhausted.
func (c *Cursor) Peek() (tok token.Token, ok bool) {
	if c.pos >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// PushBack un-consumes tok, which must be the token Next just returned.
// Only one token may be pushed back between calls to Next.
func (c *Cursor) PushBack(tok token.Token) {
	if c.pushedBack || c.pos == 0 || c.tokens[c.pos-1] != tok {
		panic("parser: invalid cursor push-back of " + tok.Describe())
	}
	c.pos--
	c.pushedBack = true
}

// Done reports whether every token has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// last is the most recently consumed token, used to position end-of-input
// errors.
func (c *Cursor) last() token.Token {
	if c.pos == 0 || len(c.tokens) == 0 {
		return token.Token{}
	}
	return c.tokens[c.pos-1]
}
