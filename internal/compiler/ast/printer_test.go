package ast

import (
	"errors"
	"testing"

	"github.com/elaralang/elara/internal/compiler/token"
)

func sampleTree() *Root {
	return &Root{Children: []Node{
		&Declaration{
			Token:   token.Token{Type: token.TokenLet, Literal: "let"},
			Name:    "f",
			Mutable: true,
			Value: &Function{
				Formals: &Parameters{Children: []Node{&Identifier{Name: "x"}}},
				Body: &Scope{Children: []Node{
					&FunctionCall{Callee: "print", Arguments: &Parameters{Children: []Node{
						&String{Value: "hi"},
						&Identifier{Name: "x"},
					}}},
					&Assignment{Name: "x", Value: &Number{Value: 2}},
				}},
			},
		},
	}}
}

func TestPrintSExpr(t *testing.T) {
	got := Print(sampleTree(), FormatSExpr)
	want := `(Root (Declaration mut f (Function (Parameters (Identifier x)) (Scope (FunctionCall print (Parameters (String "hi") (Identifier x))) (Assignment x (Number 2))))))`
	if got != want {
		t.Errorf("Print(sexpr) wrong.\nexpected=%s\ngot=%s", want, got)
	}
}

func TestPrintTree(t *testing.T) {
	got := Print(sampleTree(), FormatTree)
	want := `Root
  Declaration mut f
    Function
      Parameters
        Identifier x
      Scope
        FunctionCall print
          Parameters
            String "hi"
            Identifier x
        Assignment x
          Number 2
`
	if got != want {
		t.Errorf("Print(tree) wrong.\nexpected=\n%s\ngot=\n%s", want, got)
	}
}

func TestNodeString(t *testing.T) {
	got := sampleTree().String()
	want := "let mut f = :(x) => {\n\tprint(\"hi\", x)\n\tx = 2\n}\n"
	if got != want {
		t.Errorf("Root.String() wrong.\nexpected=%q\ngot=%q", want, got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"tree", FormatTree, false},
		{"", FormatTree, false},
		{"SEXPR", FormatSExpr, false},
		{"json", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// countingVisitor tallies node kinds and stops at the first Assignment.
type countingVisitor struct {
	counts map[string]int
}

var errStop = errors.New("stop")

func (c *countingVisitor) visitAll(kind string, children ...Node) error {
	c.counts[kind]++
	for _, ch := range children {
		if err := ch.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *countingVisitor) VisitRoot(n *Root) error             { return c.visitAll("root", n.Children...) }
func (c *countingVisitor) VisitIdentifier(n *Identifier) error { return c.visitAll("identifier") }
func (c *countingVisitor) VisitNumber(n *Number) error         { return c.visitAll("number") }
func (c *countingVisitor) VisitString(n *String) error         { return c.visitAll("string") }
func (c *countingVisitor) VisitScope(n *Scope) error           { return c.visitAll("scope", n.Children...) }
func (c *countingVisitor) VisitParameters(n *Parameters) error {
	return c.visitAll("parameters", n.Children...)
}
func (c *countingVisitor) VisitDeclaration(n *Declaration) error {
	return c.visitAll("declaration", n.Value)
}
func (c *countingVisitor) VisitAssignment(n *Assignment) error {
	c.counts["assignment"]++
	return errStop
}
func (c *countingVisitor) VisitFunctionCall(n *FunctionCall) error {
	return c.visitAll("call", n.Arguments)
}
func (c *countingVisitor) VisitFunction(n *Function) error {
	return c.visitAll("function", n.Formals, n.Body)
}

func TestVisitorDispatchAndErrorPropagation(t *testing.T) {
	v := &countingVisitor{counts: map[string]int{}}
	err := sampleTree().Accept(v)
	if !errors.Is(err, errStop) {
		t.Fatalf("expected errStop to propagate, got=%v", err)
	}
	want := map[string]int{
		"root": 1, "declaration": 1, "function": 1, "parameters": 2,
		"identifier": 2, "scope": 1, "call": 1, "string": 1, "assignment": 1,
	}
	for k, n := range want {
		if v.counts[k] != n {
			t.Errorf("counts[%q] expected=%d, got=%d", k, n, v.counts[k])
		}
	}
	if v.counts["number"] != 0 {
		t.Errorf("visitor should stop before Number, got=%d", v.counts["number"])
	}
}
