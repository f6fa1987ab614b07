package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

type Format int

const (
	FormatTree  Format = iota // indented, one node per line
	FormatSExpr               // single-line S-expression
)

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "tree", "":
		return FormatTree, nil
	case "sexpr":
		return FormatSExpr, nil
	}
	return 0, fmt.Errorf("unknown format %q (want tree or sexpr)", s)
}

// Printer renders a tree through the Visitor contract only.
type Printer struct {
	format Format
	out    bytes.Buffer
	depth  int
}

func NewPrinter(format Format) *Printer {
	return &Printer{format: format}
}

// Print renders n in the given format.
func Print(n Node, format Format) string {
	p := NewPrinter(format)
	_ = n.Accept(p) // the printer itself never fails
	return p.out.String()
}

func (p *Printer) String() string { return p.out.String() }

func (p *Printer) VisitRoot(n *Root) error {
	return p.node("Root", "", n.Children...)
}

func (p *Printer) VisitIdentifier(n *Identifier) error {
	return p.node("Identifier", n.Name)
}

func (p *Printer) VisitNumber(n *Number) error {
	return p.node("Number", strconv.FormatInt(n.Value, 10))
}

func (p *Printer) VisitString(n *String) error {
	return p.node("String", strconv.Quote(n.Value))
}

func (p *Printer) VisitScope(n *Scope) error {
	return p.node("Scope", "", n.Children...)
}

func (p *Printer) VisitParameters(n *Parameters) error {
	return p.node("Parameters", "", n.Children...)
}

func (p *Printer) VisitDeclaration(n *Declaration) error {
	attr := n.Name
	if n.Mutable {
		attr = "mut " + attr
	}
	return p.node("Declaration", attr, n.Value)
}

func (p *Printer) VisitAssignment(n *Assignment) error {
	return p.node("Assignment", n.Name, n.Value)
}

func (p *Printer) VisitFunctionCall(n *FunctionCall) error {
	return p.node("FunctionCall", n.Callee, n.Arguments)
}

func (p *Printer) VisitFunction(n *Function) error {
	return p.node("Function", "", n.Formals, n.Body)
}

func (p *Printer) node(kind, attr string, children ...Node) error {
	switch p.format {
	case FormatSExpr:
		p.out.WriteString("(" + kind)
		if attr != "" {
			p.out.WriteString(" " + attr)
		}
		for _, c := range children {
			p.out.WriteString(" ")
			if err := c.Accept(p); err != nil {
				return err
			}
		}
		p.out.WriteString(")")
	default:
		p.out.WriteString(strings.Repeat("  ", p.depth) + kind)
		if attr != "" {
			p.out.WriteString(" " + attr)
		}
		p.out.WriteString("\n")
		p.depth++
		for _, c := range children {
			if err := c.Accept(p); err != nil {
				return err
			}
		}
		p.depth--
	}
	return nil
}
