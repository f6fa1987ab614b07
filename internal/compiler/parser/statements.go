package parser

import (
	"github.com/elaralang/elara/internal/compiler/ast"
	"github.com/elaralang/elara/internal/compiler/token"
)

// parseDeclaration -> let [mut] name = value
func (p *Parser) parseDeclaration(letTok token.Token) (ast.Node, error) {
	decl := &ast.Declaration{Token: letTok}

	id, err := p.expect("declaration")
	if err != nil {
		return nil, err
	}
	if id.Type == token.TokenMut {
		decl.Mutable = true
		if id, err = p.expect("declaration"); err != nil {
			return nil, err
		}
	}
	if id.Type != token.TokenIdent {
		return nil, invalidSyntax(id, "identifier expected on declaration, found %s", id.Describe())
	}
	decl.Name = id.Literal

	eq, err := p.expect("declaration")
	if err != nil {
		return nil, err
	}
	if eq.Type != token.TokenDef {
		return nil, invalidSyntax(eq, "'=' expected on declaration of %q, found %s", decl.Name, eq.Describe())
	}

	value, err := p.parseNext(noContext, nil)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, invalidSyntax(eq, "could not find expression to assign to %q", decl.Name)
	}
	decl.Value = value
	return decl, nil
}

// parseAssignment -> name = value, with '=' already consumed
func (p *Parser) parseAssignment(target, defTok token.Token) (ast.Node, error) {
	value, err := p.parseNext(noContext, nil)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, invalidSyntax(defTok, "value expected for assignment to %q", target.Literal)
	}
	return &ast.Assignment{Token: target, Name: target.Literal, Value: value}, nil
}

// parseFunctionCall -> name(arg, ...), with '(' already consumed
func (p *Parser) parseFunctionCall(callee, lparen token.Token) (ast.Node, error) {
	args, err := p.parseParameters(lparen, token.TokenComma, token.TokenRParen, "function call")
	if err != nil {
		return nil, err
	}
	return &ast.FunctionCall{Token: callee, Callee: callee.Literal, Arguments: args}, nil
}

// parseFunction -> :(formal, ...) => body, with ':' already consumed.
// The body is a single expression; a block body comes from the '{' rule.
func (p *Parser) parseFunction(colon token.Token) (ast.Node, error) {
	lparen, err := p.expect("function literal")
	if err != nil {
		return nil, err
	}
	if lparen.Type != token.TokenLParen {
		return nil, invalidSyntax(lparen, "parameter list expected for function literal, found %s", lparen.Describe())
	}

	formals, err := p.parseParameters(lparen, token.TokenComma, token.TokenRParen, "function parameters")
	if err != nil {
		return nil, err
	}

	arrow, err := p.expect("function literal")
	if err != nil {
		return nil, err
	}
	if arrow.Type != token.TokenArrow {
		return nil, invalidSyntax(arrow, "'=>' expected after function parameters, found %s", arrow.Describe())
	}

	body, err := p.parseNext(noContext, nil)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, invalidSyntax(arrow, "function body expected after '=>'")
	}
	return &ast.Function{Token: colon, Formals: formals, Body: body}, nil
}

// parseParameters reads expressions up to end, each followed by separator
// or end. An empty separator means entries are simply adjacent.
func (p *Parser) parseParameters(open token.Token, separator, end token.TokenType, construct string) (*ast.Parameters, error) {
	params := &ast.Parameters{Token: open, Children: []ast.Node{}}
	closers := token.Set{end}
	if separator != "" {
		closers = append(closers, separator)
	}

	for {
		next, err := p.peekOpen(open, construct)
		if err != nil {
			return nil, err
		}
		if next.Type == end {
			break
		}

		param, err := p.parseNext(noContext, closers)
		if err != nil {
			return nil, err
		}
		if param == nil {
			return nil, invalidSyntax(next, "invalid argument in %s", construct)
		}
		params.Children = append(params.Children, param)

		if separator == "" {
			continue
		}
		after, err := p.peekOpen(open, construct)
		if err != nil {
			return nil, err
		}
		switch after.Type {
		case separator:
			p.cur.Next()
		case end:
		default:
			return nil, invalidSyntax(after, "invalid separator in %s: expected %s or %s, found %s",
				construct, separator, end, after.Describe())
		}
	}

	p.cur.Next() // end
	return params, nil
}

// parseScope -> { expr \n expr ... }, with '{' already consumed
func (p *Parser) parseScope(lbrace token.Token) (ast.Node, error) {
	scope := &ast.Scope{Token: lbrace, Children: []ast.Node{}}
	closers := token.Set{token.TokenRBrace}

	for {
		next, err := p.peekOpen(lbrace, "scope")
		if err != nil {
			return nil, err
		}
		if next.Type == token.TokenRBrace {
			break
		}

		node, err := p.parseNext(noContext, closers)
		if err != nil {
			return nil, err
		}
		if node != nil {
			scope.Children = append(scope.Children, node)
		}
	}

	p.cur.Next() // }
	return scope, nil
}
