package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/elaralang/elara/internal/compiler/ast"
	"github.com/elaralang/elara/internal/compiler/lexer"
	"github.com/elaralang/elara/internal/compiler/parser"
	"github.com/elaralang/elara/internal/compiler/token"
)

// SourceExt is the extension every Elara source file must carry.
const SourceExt = ".el"

// Result is everything a front-end pass produces for one source.
type Result struct {
	Source   string
	Tokens   []token.Token
	Root     *ast.Root
	Warnings []string
}

// ParseFile reads, lexes and parses one source file. Errors carry a caret
// snippet of the offending line.
func ParseFile(srcPath string) (*Result, error) {
	if err := validateExtension(srcPath); err != nil {
		return nil, err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	res, err := ParseSource(content)
	if err != nil {
		return nil, WrapErrorWithName(err, srcPath, content)
	}
	return res, nil
}

// ParseSource lexes and parses src. Returned errors are the raw
// *lexer.Error or *parser.SyntaxError values.
func ParseSource(src string) (*Result, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	p := parser.NewParser(toks)
	root, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}

	return &Result{Source: src, Tokens: toks, Root: root, Warnings: p.Warnings()}, nil
}

// TokenizeFile reads and lexes one source file without parsing it.
func TokenizeFile(srcPath string) ([]token.Token, error) {
	if err := validateExtension(srcPath); err != nil {
		return nil, err
	}

	content, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	toks, err := lexer.Tokenize(content)
	if err != nil {
		return nil, WrapErrorWithName(err, srcPath, content)
	}
	return toks, nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != SourceExt {
		return fmt.Errorf("source must have %s extension", SourceExt)
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}
