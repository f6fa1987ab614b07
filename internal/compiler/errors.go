package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elaralang/elara/internal/compiler/lexer"
	"github.com/elaralang/elara/internal/compiler/parser"
)

// SourceError is a lexer or parser error rendered against its source. It
// unwraps to the original error, so errors.Is/As keep working.
type SourceError struct {
	Line, Column int
	snippet      string
	err          error
}

func (e *SourceError) Error() string { return e.snippet }
func (e *SourceError) Unwrap() error { return e.err }

// WrapErrorWithSource is WrapErrorWithName without a source name.
func WrapErrorWithSource(err error, src string) error {
	return WrapErrorWithName(err, "", src)
}

// WrapErrorWithName renders lexer and parser errors as a caret snippet with
// one line of context either side:
//
//	SYNTAX ERROR in main.el at 2:7: invalid separator in function call ...
//
//	   1 | let x = 1
//	   2 | f(1, 2 3)
//	     |        ^
//
// Any other error is returned unchanged.
func WrapErrorWithName(err error, srcName, src string) error {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return newSourceError(err, src, "LEXICAL ERROR", srcName, lexErr.Line, lexErr.Column, lexErr.Msg)
	}
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return newSourceError(err, src, "SYNTAX ERROR", srcName, synErr.Token.Line, synErr.Token.Column, synErr.Msg)
	}
	return err
}

func newSourceError(err error, src, header, name string, line, col int, msg string) *SourceError {
	line, col, snippet := renderSnippet(src, header, name, line, col, msg)
	return &SourceError{Line: line, Column: col, snippet: snippet, err: err}
}

// renderSnippet clamps line/col to the source and returns them with the
// rendered text.
func renderSnippet(src, header, name string, line, col int, msg string) (int, int, string) {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, col, msg)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	}
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return line, col, b.String()
}
