package parser

import (
	"fmt"
	"strconv"

	"github.com/elaralang/elara/internal/compiler/ast"
	"github.com/elaralang/elara/internal/compiler/token"
)

// pendingKind tags the left context carried into the next parse step.
type pendingKind int

const (
	pendingNone       pendingKind = iota // fresh statement position
	pendingIdentifier                    // an identifier whose role is not yet known
)

// pending is a previously read token whose role the next token decides.
type pending struct {
	kind pendingKind
	tok  token.Token
}

var noContext = pending{kind: pendingNone}

type Parser struct {
	cur      *Cursor
	warnings []string
}

// NewParser parses tokens as produced by the lexer. A trailing EOF token is
// optional.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{cur: NewCursor(tokens), warnings: []string{}}
}

// Parse is shorthand for NewParser(tokens).ParseProgram().
func Parse(tokens []token.Token) (*ast.Root, error) {
	return NewParser(tokens).ParseProgram()
}

// --- Warning Handling ---

func (p *Parser) addWarning(tok token.Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.warnings = append(p.warnings, fmt.Sprintf("%d:%d: Syntax Warning: %s", tok.Line, tok.Column, msg))
}

// Warnings lists input the parser skipped without failing.
func (p *Parser) Warnings() []string {
	return p.warnings
}

// --- Program Parsing ---

// ParseProgram consumes the whole token stream. Any error is fatal and no
// tree is returned with it.
func (p *Parser) ParseProgram() (*ast.Root, error) {
	root := &ast.Root{Children: []ast.Node{}}
	for !p.cur.Done() {
		node, err := p.parseNext(noContext, nil)
		if err != nil {
			return nil, err
		}
		if node != nil {
			root.Children = append(root.Children, node)
		}
	}
	return root, nil
}

// parseNext reads one expression. A token in terminators is left unconsumed
// and ends the expression; a nil node with a nil error means nothing was
// there to parse.
func (p *Parser) parseNext(ctx pending, terminators token.Set) (ast.Node, error) {
	tok, err := p.cur.Next()
	if err != nil {
		return nil, err
	}

	if terminators.Contains(tok.Type) {
		p.cur.PushBack(tok)
		if ctx.kind == pendingNone {
			return nil, nil
		}
		return p.parseLeaf(ctx.tok)
	}

	switch ctx.kind {
	case pendingNone:
		return p.parseFresh(tok, terminators)
	case pendingIdentifier:
		return p.parseAfterIdentifier(ctx.tok, tok)
	}
	return nil, fmt.Errorf("internal parser error: unknown context %d", ctx.kind)
}

// parseFresh dispatches on the first token of an expression.
func (p *Parser) parseFresh(tok token.Token, terminators token.Set) (ast.Node, error) {
	switch tok.Type {
	case token.TokenLet:
		return p.parseDeclaration(tok)
	case token.TokenIdent:
		// call, assignment or bare reference: the next token decides
		return p.parseNext(pending{kind: pendingIdentifier, tok: tok}, terminators)
	case token.TokenNumber:
		return p.parseNumber(tok)
	case token.TokenString:
		return &ast.String{Token: tok, Value: tok.Literal}, nil
	case token.TokenLBrace:
		return p.parseScope(tok)
	case token.TokenColon:
		return p.parseFunction(tok)
	case token.TokenNewline:
		return p.parseNext(noContext, terminators)
	case token.TokenEOF:
		return nil, nil
	default:
		p.addWarning(tok, "unexpected %s at start of expression, skipped", tok.Describe())
		return nil, nil
	}
}

// parseAfterIdentifier resolves a pending identifier using the token after it.
func (p *Parser) parseAfterIdentifier(ident, tok token.Token) (ast.Node, error) {
	switch tok.Type {
	case token.TokenLParen:
		return p.parseFunctionCall(ident, tok)
	case token.TokenDef:
		return p.parseAssignment(ident, tok)
	case token.TokenNewline:
		return p.parseLeaf(ident)
	case token.TokenEOF:
		p.cur.PushBack(tok)
		return p.parseLeaf(ident)
	default:
		p.cur.PushBack(tok)
		p.addWarning(ident, "identifier %q followed by %s is not a recognized expression, dropped", ident.Literal, tok.Describe())
		return nil, nil
	}
}

func (p *Parser) parseLeaf(tok token.Token) (ast.Node, error) {
	switch tok.Type {
	case token.TokenIdent:
		return &ast.Identifier{Token: tok, Name: tok.Literal}, nil
	case token.TokenNumber:
		return p.parseNumber(tok)
	case token.TokenString:
		return &ast.String{Token: tok, Value: tok.Literal}, nil
	}
	return nil, invalidSyntax(tok, "invalid expression at %s", tok.Describe())
}

func (p *Parser) parseNumber(tok token.Token) (ast.Node, error) {
	val, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, &SyntaxError{
			Kind:  InvalidNumberLiteral,
			Token: tok,
			Msg:   fmt.Sprintf("invalid number literal %q", tok.Literal),
		}
	}
	return &ast.Number{Token: tok, Value: val}, nil
}

// expect reads a token the construct cannot do without. EOF counts as
// running out of input.
func (p *Parser) expect(construct string) (token.Token, error) {
	tok, err := p.cur.Next()
	if err != nil || tok.Type == token.TokenEOF {
		return tok, unexpectedEnd(p.cur.last(), "unexpected end of input in %s", construct)
	}
	return tok, nil
}

// peekOpen peeks inside a bracketed construct that must be closed before
// the input ends.
func (p *Parser) peekOpen(open token.Token, construct string) (token.Token, error) {
	tok, ok := p.cur.Peek()
	if !ok || tok.Type == token.TokenEOF {
		return tok, unexpectedEnd(p.cur.last(), "unterminated %s opened at %d:%d", construct, open.Line, open.Column)
	}
	return tok, nil
}
