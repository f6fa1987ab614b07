package parser

import (
	"errors"
	"testing"

	"github.com/elaralang/elara/internal/compiler/token"
)

func TestCursorNextAndPeek(t *testing.T) {
	toks := []token.Token{
		{Type: token.TokenIdent, Literal: "a", Line: 1, Column: 1},
		{Type: token.TokenEOF, Line: 1, Column: 2},
	}
	c := NewCursor(toks)

	peeked, ok := c.Peek()
	if !ok || peeked != toks[0] {
		t.Fatalf("Peek() expected %s, got %s (ok=%v)", toks[0], peeked, ok)
	}
	again, _ := c.Peek()
	if again != peeked {
		t.Fatalf("Peek() must not advance: first=%s, second=%s", peeked, again)
	}

	first, err := c.Next()
	if err != nil || first != toks[0] {
		t.Fatalf("Next() expected %s, got %s (err=%v)", toks[0], first, err)
	}
	second, err := c.Next()
	if err != nil || second != toks[1] {
		t.Fatalf("Next() expected %s, got %s (err=%v)", toks[1], second, err)
	}
	if !c.Done() {
		t.Errorf("Done() expected true after consuming all tokens")
	}
	if _, ok := c.Peek(); ok {
		t.Errorf("Peek() expected ok=false when exhausted")
	}

	_, err = c.Next()
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Fatalf("Next() on exhausted cursor expected ErrUnexpectedEndOfInput, got=%v", err)
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) || synErr.Token != toks[1] {
		t.Errorf("end-of-input error should point at the last token, got=%v", err)
	}
}

func TestCursorPushBack(t *testing.T) {
	toks := []token.Token{
		{Type: token.TokenIdent, Literal: "a"},
		{Type: token.TokenComma, Literal: ","},
	}
	c := NewCursor(toks)

	c.Next()
	comma, _ := c.Next()
	c.PushBack(comma)

	if c.Done() {
		t.Fatalf("Done() expected false after push-back")
	}
	got, err := c.Next()
	if err != nil || got != comma {
		t.Fatalf("Next() after push-back expected %s, got %s (err=%v)", comma, got, err)
	}
}

func TestCursorPushBackTwicePanics(t *testing.T) {
	toks := []token.Token{
		{Type: token.TokenIdent, Literal: "a"},
		{Type: token.TokenComma, Literal: ","},
	}
	c := NewCursor(toks)
	c.Next()
	comma, _ := c.Next()
	c.PushBack(comma)

	defer func() {
		if recover() == nil {
			t.Errorf("second PushBack without Next should panic")
		}
	}()
	c.PushBack(toks[0])
}

func TestCursorPushBackForeignTokenPanics(t *testing.T) {
	c := NewCursor([]token.Token{{Type: token.TokenIdent, Literal: "a"}})
	c.Next()

	defer func() {
		if recover() == nil {
			t.Errorf("PushBack of a token that was not just read should panic")
		}
	}()
	c.PushBack(token.Token{Type: token.TokenIdent, Literal: "b"})
}
