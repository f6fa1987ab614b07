package token

import (
	"fmt"
	"slices"
)

type TokenType string

const (
	// Keywords
	TokenLet    TokenType = "LET"    // let
	TokenMut    TokenType = "MUT"    // mut
	TokenReturn TokenType = "RETURN" // return (reserved, not yet parsed)

	// Literals & Identifiers
	TokenIdent  TokenType = "IDENTIFIER" // name, or an operator run such as + or <=
	TokenNumber TokenType = "NUMBER"     // 42
	TokenString TokenType = "STRING"     // "..."

	// Punctuation
	TokenDef    TokenType = "DEF"    // =
	TokenArrow  TokenType = "ARROW"  // =>
	TokenEqual  TokenType = "EQUAL"  // == (reserved, not yet parsed)
	TokenLParen TokenType = "LPAREN" // (
	TokenRParen TokenType = "RPAREN" // )
	TokenLBrace TokenType = "LBRACE" // {
	TokenRBrace TokenType = "RBRACE" // }
	TokenComma  TokenType = "COMMA"  // ,
	TokenColon  TokenType = "COLON"  // :

	// Special
	TokenNewline TokenType = "NEWLINE"
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

// Token is produced once by the lexer and never mutated.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	switch t.Type {
	case TokenNewline, TokenEOF:
		return fmt.Sprintf("%s %d:%d", t.Type, t.Line, t.Column)
	}
	return fmt.Sprintf("%s(%q) %d:%d", t.Type, t.Literal, t.Line, t.Column)
}

// Describe renders the token for diagnostics, e.g. `"abc" (IDENTIFIER)`.
func (t Token) Describe() string {
	if t.Literal == "" || t.Type == TokenNewline {
		return string(t.Type)
	}
	return fmt.Sprintf("%q (%s)", t.Literal, t.Type)
}

// Set is a small set of token types, used for parser terminators.
type Set []TokenType

func (s Set) Contains(tt TokenType) bool {
	return slices.Contains(s, tt)
}
