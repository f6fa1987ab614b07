package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/elaralang/elara/internal/compiler/token"
)

// --- Interfaces ---

// Node is implemented by every AST variant. Nodes are immutable once the
// parser returns them and own their children exclusively.
type Node interface {
	TokenLiteral() string
	String() string
	Accept(v Visitor) error
}

// Visitor has one method per concrete node kind. Evaluators, printers and
// checkers implement it to add behavior without touching the node types.
type Visitor interface {
	VisitRoot(n *Root) error
	VisitIdentifier(n *Identifier) error
	VisitNumber(n *Number) error
	VisitString(n *String) error
	VisitScope(n *Scope) error
	VisitParameters(n *Parameters) error
	VisitDeclaration(n *Declaration) error
	VisitAssignment(n *Assignment) error
	VisitFunctionCall(n *FunctionCall) error
	VisitFunction(n *Function) error
}

// --- Root ---

// Root is the top of every parsed program.
type Root struct {
	Children []Node
}

func (r *Root) TokenLiteral() string {
	if len(r.Children) > 0 {
		return r.Children[0].TokenLiteral()
	}
	return ""
}

// String concatenates the children, one per line.
func (r *Root) String() string {
	var out bytes.Buffer
	for _, c := range r.Children {
		out.WriteString(c.String())
		out.WriteString("\n")
	}
	return out.String()
}

func (r *Root) Accept(v Visitor) error { return v.VisitRoot(r) }

// --- Leaves ---

type Identifier struct {
	Token token.Token // IDENTIFIER
	Name  string
}

func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Name }
func (i *Identifier) Accept(v Visitor) error { return v.VisitIdentifier(i) }

// Number -> 21
type Number struct {
	Token token.Token
	Value int64
}

func (n *Number) TokenLiteral() string   { return n.Token.Literal }
func (n *Number) String() string         { return strconv.FormatInt(n.Value, 10) }
func (n *Number) Accept(v Visitor) error { return v.VisitNumber(n) }

// String -> "hello"
type String struct {
	Token token.Token
	Value string
}

func (s *String) TokenLiteral() string   { return s.Token.Literal }
func (s *String) String() string         { return strconv.Quote(s.Value) }
func (s *String) Accept(v Visitor) error { return v.VisitString(s) }

// --- Compound nodes ---

// Scope -> { statement1 \n statement2 }
type Scope struct {
	Token    token.Token // {
	Children []Node
}

func (s *Scope) TokenLiteral() string { return s.Token.Literal }
func (s *Scope) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, c := range s.Children {
		for _, line := range strings.Split(c.String(), "\n") {
			out.WriteString("\t" + line + "\n")
		}
	}
	out.WriteString("}")
	return out.String()
}
func (s *Scope) Accept(v Visitor) error { return v.VisitScope(s) }

// Parameters is a parenthesized, comma-separated list. It serves both call
// arguments and formal parameters.
type Parameters struct {
	Token    token.Token // (
	Children []Node
}

func (p *Parameters) TokenLiteral() string { return p.Token.Literal }
func (p *Parameters) String() string {
	parts := make([]string, 0, len(p.Children))
	for _, c := range p.Children {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
func (p *Parameters) Accept(v Visitor) error { return v.VisitParameters(p) }

// Declaration -> let x = 1 or let mut x = 1
type Declaration struct {
	Token   token.Token // let
	Name    string
	Mutable bool
	Value   Node
}

func (d *Declaration) TokenLiteral() string { return d.Token.Literal }
func (d *Declaration) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	if d.Mutable {
		out.WriteString("mut ")
	}
	out.WriteString(d.Name)
	out.WriteString(" = ")
	out.WriteString(d.Value.String())
	return out.String()
}
func (d *Declaration) Accept(v Visitor) error { return v.VisitDeclaration(d) }

// Assignment -> x = 2
type Assignment struct {
	Token token.Token // the target identifier
	Name  string
	Value Node
}

func (a *Assignment) TokenLiteral() string   { return a.Token.Literal }
func (a *Assignment) String() string         { return a.Name + " = " + a.Value.String() }
func (a *Assignment) Accept(v Visitor) error { return v.VisitAssignment(a) }

// FunctionCall -> print(x, 1)
type FunctionCall struct {
	Token     token.Token // the callee identifier
	Callee    string
	Arguments *Parameters
}

func (fc *FunctionCall) TokenLiteral() string   { return fc.Token.Literal }
func (fc *FunctionCall) String() string         { return fc.Callee + fc.Arguments.String() }
func (fc *FunctionCall) Accept(v Visitor) error { return v.VisitFunctionCall(fc) }

// Function -> :(a, b) => body
type Function struct {
	Token   token.Token // :
	Formals *Parameters
	Body    Node
}

func (f *Function) TokenLiteral() string   { return f.Token.Literal }
func (f *Function) String() string         { return ":" + f.Formals.String() + " => " + f.Body.String() }
func (f *Function) Accept(v Visitor) error { return v.VisitFunction(f) }
