package lexer

import (
	"fmt"
	"strconv"

	"github.com/elaralang/elara/internal/compiler/token"
)

// Error is a lexical error at a 1-indexed source position.
type Error struct {
	Line   int
	Column int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: Lexical Error: %s", e.Line, e.Column, e.Msg)
}

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)

	err *Error
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize lexes the whole input. The returned slice always ends in a single
// EOF token unless an error is returned.
func Tokenize(input string) ([]token.Token, error) {
	l := NewLexer(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if l.err != nil {
			return nil, l.err
		}
		toks = append(toks, tok)
		if tok.Type == token.TokenEOF {
			return toks, nil
		}
	}
}

// Err returns the first lexical error seen by NextToken, if any.
func (l *Lexer) Err() error {
	if l.err == nil {
		return nil
	}
	return l.err
}

// readChar advances the lexer's position and tracks line/column numbers.
// A newline is reported on the line it ends; the column resets on the
// character after it.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch != 0 {
		l.column++
	}
}

// Returns the next character without consuming it
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column

	var tok token.Token

	switch l.ch {
	case '\n':
		tok = l.newToken(token.TokenNewline, "\n", startLine, startCol)
		l.readChar()
		return tok
	case '/':
		if l.peekChar() == '/' {
			l.readComment()
			return l.NextToken()
		}
		return l.readOperator(startLine, startCol)
	case '=':
		switch l.peekChar() {
		case '>':
			l.readChar()
			tok = l.newToken(token.TokenArrow, "=>", startLine, startCol)
		case '=':
			l.readChar()
			tok = l.newToken(token.TokenEqual, "==", startLine, startCol)
		default:
			tok = l.newToken(token.TokenDef, "=", startLine, startCol)
		}
		l.readChar()
		return tok
	case '(':
		tok = l.newToken(token.TokenLParen, string(l.ch), startLine, startCol)
	case ')':
		tok = l.newToken(token.TokenRParen, string(l.ch), startLine, startCol)
	case '{':
		tok = l.newToken(token.TokenLBrace, string(l.ch), startLine, startCol)
	case '}':
		tok = l.newToken(token.TokenRBrace, string(l.ch), startLine, startCol)
	case ',':
		tok = l.newToken(token.TokenComma, string(l.ch), startLine, startCol)
	case ':':
		tok = l.newToken(token.TokenColon, string(l.ch), startLine, startCol)
	case '"':
		return l.readString(startLine, startCol)
	case 0:
		// Do NOT call l.readChar() here
		return l.newToken(token.TokenEOF, "", startLine, startCol)
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(lookupIdent(ident), ident, startLine, startCol)
		} else if isDigit(l.ch) {
			return l.readNumber(startLine, startCol)
		} else if isOperator(l.ch) {
			return l.readOperator(startLine, startCol)
		}
		tok = l.newToken(token.TokenIllegal, string(l.ch), startLine, startCol)
	}

	l.readChar()
	return tok
}

// newToken is a helper to create a token.Token struct
func (l *Lexer) newToken(tokenType token.TokenType, literal string, line, col int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line, Column: col}
}

// Newlines are significant, so only horizontal whitespace is skipped.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readOperator lexes a run of operator characters as an identifier, so that
// `a + b` and `x <= y` reach the parser as plain names. A trailing '=' is
// folded in (`<=`, `!=`) unless it starts an arrow.
func (l *Lexer) readOperator(startLine, startCol int) token.Token {
	start := l.position
	for isOperator(l.ch) {
		l.readChar()
	}
	if l.ch == '=' && l.peekChar() != '>' {
		l.readChar()
	}
	return l.newToken(token.TokenIdent, l.input[start:l.position], startLine, startCol)
}

func (l *Lexer) readString(startLine, startCol int) token.Token {
	start := l.position
	l.readChar() // Consume opening "

	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			l.fail(startLine, startCol, "unterminated string literal")
			return l.newToken(token.TokenIllegal, l.input[start:l.position], startLine, startCol)
		}
		if l.ch == '\\' {
			l.readChar()
			if l.ch == 0 {
				continue
			}
		}
		l.readChar()
	}
	l.readChar() // Consume closing "

	raw := l.input[start:l.position]
	lit, err := strconv.Unquote(raw)
	if err != nil {
		l.fail(startLine, startCol, fmt.Sprintf("invalid string literal %s", raw))
		return l.newToken(token.TokenIllegal, raw, startLine, startCol)
	}
	return l.newToken(token.TokenString, lit, startLine, startCol)
}

func (l *Lexer) readNumber(startLine, startCol int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.newToken(token.TokenNumber, l.input[start:l.position], startLine, startCol)
}

func (l *Lexer) fail(line, col int, msg string) {
	if l.err == nil {
		l.err = &Error{Line: line, Column: col, Msg: msg}
	}
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '<', '>', '!', '%', '&', '|', '^', '~', '?':
		return true
	}
	return false
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"let":    token.TokenLet,
	"mut":    token.TokenMut,
	"return": token.TokenReturn,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
