// Package prettyprinter renders a parsed tree back out as an indented
// debug dump, in the style of the teacher's own tree printer: one
// Visitor implementation, one line per node, child nodes indented two
// spaces deeper than their parent.
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shencraft/shenc/internal/ast"
)

// TreePrinter walks an ast.Node via the Visitor interface and accumulates
// an indented text tree. It exists for the CLI's --debug-ast flag and for
// snapshot tests that want a stable, human-readable view of a parse.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

// Print renders node and returns the accumulated text.
func Print(node ast.Node) string {
	p := NewTreePrinter()
	node.Accept(p)
	return p.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
	p.buf.WriteString(fmt.Sprintf(format, args...))
	p.buf.WriteString("\n")
}

func (p *TreePrinter) visitChild(n ast.Node) {
	if n == nil {
		return
	}
	p.indent++
	n.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitFunction(n *ast.FunctionNode) {
	p.line("Function %s -> %s", n.Name, n.ReturnType)
	p.visitChild(n.Body)
}

func (p *TreePrinter) VisitLambda(n *ast.LambdaNode) {
	p.line("Lambda -> %s", n.ReturnType)
	p.visitChild(n.Body)
}

func (p *TreePrinter) VisitApplication(n *ast.ApplicationNode) {
	p.line("Application")
	p.visitChild(n.Func)
	for _, arg := range n.Args {
		p.visitChild(arg)
	}
}

func (p *TreePrinter) VisitBinaryOperation(n *ast.BinaryOperationNode) {
	p.line("BinaryOperation %s : %s", n.Operator, n.ResultType)
	p.visitChild(n.Left)
	p.visitChild(n.Right)
}

func (p *TreePrinter) VisitConditional(n *ast.ConditionalNode) {
	p.line("Conditional")
	p.visitChild(n.Condition)
	p.visitChild(n.TrueBranch)
	if n.FalseBranch != nil {
		p.visitChild(n.FalseBranch)
	}
}

func (p *TreePrinter) VisitList(n *ast.ListNode) {
	p.line("List : %s", n.ElementType)
	for _, e := range n.Elements {
		p.visitChild(e)
	}
}

func (p *TreePrinter) VisitLiteral(n *ast.LiteralNode) {
	p.line("Literal %s : %s", n.Value.String(), n.Value.Type())
}

func (p *TreePrinter) VisitSymbol(n *ast.SymbolNode) {
	p.line("Symbol %s : %s", n.Name, n.TypeHint)
}

func (p *TreePrinter) VisitLet(n *ast.LetNode) {
	p.line("Let %s", n.Name.Name)
	p.visitChild(n.Value)
	p.visitChild(n.Body)
}

func (p *TreePrinter) VisitNil(n *ast.NilNode) {
	p.line("Nil")
}
