package parser

import (
	"errors"
	"fmt"

	"github.com/elaralang/elara/internal/compiler/token"
)

type ErrorKind int

const (
	InvalidSyntax ErrorKind = iota
	UnexpectedEndOfInput
	InvalidNumberLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSyntax:
		return "invalid syntax"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case InvalidNumberLiteral:
		return "invalid number literal"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is matching against a *SyntaxError's Kind.
var (
	ErrInvalidSyntax        = errors.New("invalid syntax")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrInvalidNumberLiteral = errors.New("invalid number literal")
)

// SyntaxError is fatal: the parse that produced it returns no tree.
type SyntaxError struct {
	Kind  ErrorKind
	Token token.Token // offending token; zero when input ran out
	Msg   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: Syntax Error: %s", e.Token.Line, e.Token.Column, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	switch target {
	case ErrInvalidSyntax:
		return e.Kind == InvalidSyntax
	case ErrUnexpectedEndOfInput:
		return e.Kind == UnexpectedEndOfInput
	case ErrInvalidNumberLiteral:
		return e.Kind == InvalidNumberLiteral
	}
	return false
}

func invalidSyntax(tok token.Token, format string, args ...any) error {
	return &SyntaxError{Kind: InvalidSyntax, Token: tok, Msg: fmt.Sprintf(format, args...)}
}

func unexpectedEnd(tok token.Token, format string, args ...any) error {
	return &SyntaxError{Kind: UnexpectedEndOfInput, Token: tok, Msg: fmt.Sprintf(format, args...)}
}
