// Package emitter performs syntax-directed translation of the AST into
// Rust-flavored target source (spec.md §4.4). Emission never inspects the
// original source text — only the (already type-tightened) tree — so
// running Emit twice over the same tree yields byte-identical output
// (spec.md §5's determinism invariant).
package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shencraft/shenc/internal/ast"
	"github.com/shencraft/shenc/internal/config"
	"github.com/shencraft/shenc/internal/diagnostics"
)

// operatorPrecedence mirrors a small Pratt-style printer (modeled on a
// CodePrinter's precedence table) so that a nested BinaryOperation only gets
// parenthesized when its operator binds looser than its parent's, or binds
// equally and sits where the target would regroup it (see
// emitBinaryOperation).
var operatorPrecedence = map[string]int{
	"=": 1, "<": 1, ">": 1, "<=": 1, ">=": 1,
	"+": 2, "-": 2,
	"*": 3, "/": 3,
}

func precedenceOf(op string) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 0
}

func rustOperator(op string) string {
	if op == "=" {
		return "=="
	}
	return op
}

// Emit translates the single root node (spec.md §6, SPEC_FULL §9.1) into
// target source text.
func Emit(form ast.Node) (string, error) {
	text, err := emitNode(form, 0)
	if err != nil {
		return "", err
	}
	return text + "\n", nil
}

// emitNode dispatches by concrete type. parentPrecedence is only consulted
// by BinaryOperation, to decide whether it must parenthesize itself.
func emitNode(node ast.Node, parentPrecedence int) (string, error) {
	switch n := node.(type) {
	case *ast.FunctionNode:
		return emitFunction(n)
	case *ast.LambdaNode:
		return emitLambda(n)
	case *ast.ApplicationNode:
		return emitApplication(n)
	case *ast.BinaryOperationNode:
		return emitBinaryOperation(n, parentPrecedence)
	case *ast.ConditionalNode:
		return emitConditional(n)
	case *ast.ListNode:
		return emitList(n)
	case *ast.LiteralNode:
		return emitLiteral(n)
	case *ast.SymbolNode:
		return n.Name, nil
	case *ast.LetNode:
		return emitLet(n)
	case *ast.NilNode:
		return "None", nil
	case nil:
		return "", diagnostics.Internal("nil node reached emitter")
	default:
		return "", diagnostics.EmitError(fmt.Sprintf("%T", node))
	}
}

// rustType maps a ShenType to a target-language spelling. For parameters,
// Symbol (meaning "no narrowed type") is handled by paramSignature, which
// assigns a generic placeholder instead; a Symbol return type reaches the
// default case below.
func rustType(t ast.ShenType) string {
	switch t {
	case ast.Integer:
		return "i64"
	case ast.Float:
		return "f64"
	case ast.String:
		return "String"
	case ast.Boolean:
		return "bool"
	case ast.List:
		return "Vec<T>"
	case ast.Function:
		return "impl Fn"
	case ast.Nil:
		return "Option<()>"
	default:
		// Symbol: the return type was never narrowed (e.g. the body is a
		// bare application whose callee's signature isn't looked up).
		return "impl Clone"
	}
}

// paramSignature renders a function/lambda's parameter list along with the
// generic placeholders (spec.md §9 Open Question 5) any untyped parameter
// needs: the first untyped parameter becomes T0, the second T1, and so on.
// It returns the rendered "(name: Type, ...)" list and the "<T0, T1>"
// generics clause (empty when every parameter is typed).
func paramSignature(params []ast.Param) (sig string, generics string) {
	var parts []string
	var generic []string
	next := 0
	for _, p := range params {
		if p.Type == ast.Symbol {
			name := fmt.Sprintf("%s%d", config.UntypedParamPrefix, next)
			next++
			generic = append(generic, name)
			parts = append(parts, fmt.Sprintf("%s: %s", p.Name, name))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Name, rustType(p.Type)))
		}
	}
	sig = strings.Join(parts, ", ")
	if len(generic) > 0 {
		generics = "<" + strings.Join(generic, ", ") + ">"
	}
	return sig, generics
}

func emitFunction(n *ast.FunctionNode) (string, error) {
	sig, generics := paramSignature(n.Args)
	body, err := emitNode(n.Body, 0)
	if err != nil {
		return "", err
	}
	retType := rustType(n.ReturnType)
	return fmt.Sprintf("fn %s%s(%s) -> %s {\n    %s\n}", n.Name, generics, sig, retType, body), nil
}

func emitLambda(n *ast.LambdaNode) (string, error) {
	var names []string
	for _, p := range n.Args {
		names = append(names, p.Name)
	}
	body, err := emitNode(n.Body, 0)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("|%s| { %s }", strings.Join(names, ", "), body), nil
}

func emitApplication(n *ast.ApplicationNode) (string, error) {
	if sym, ok := n.Func.(*ast.SymbolNode); ok {
		switch sym.Name {
		case "length":
			if len(n.Args) == 1 {
				arg, err := emitNode(n.Args[0], 0)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s.len()", arg), nil
			}
		case "first":
			if len(n.Args) == 1 {
				arg, err := emitNode(n.Args[0], 0)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%s.first()", arg), nil
			}
		}
	}

	fn, err := emitNode(n.Func, 0)
	if err != nil {
		return "", err
	}
	var args []string
	for _, a := range n.Args {
		text, err := emitNode(a, 0)
		if err != nil {
			return "", err
		}
		args = append(args, text)
	}
	return fmt.Sprintf("%s(%s)", fn, strings.Join(args, ", ")), nil
}

func emitBinaryOperation(n *ast.BinaryOperationNode, parentPrecedence int) (string, error) {
	prec := precedenceOf(n.Operator)
	leftPrec := prec
	if prec == precedenceOf("=") {
		// Comparisons do not chain in the target, so an equal-precedence
		// left operand is parenthesized as well.
		leftPrec = prec + 1
	}
	left, err := emitNode(n.Left, leftPrec)
	if err != nil {
		return "", err
	}
	// The target's operators associate left, so an equal-precedence right
	// operand keeps its parentheses.
	right, err := emitNode(n.Right, prec+1)
	if err != nil {
		return "", err
	}
	text := fmt.Sprintf("%s %s %s", left, rustOperator(n.Operator), right)
	if precedenceOf(n.Operator) < parentPrecedence {
		return "(" + text + ")", nil
	}
	return text, nil
}

func emitConditional(n *ast.ConditionalNode) (string, error) {
	cond, err := emitNode(n.Condition, 0)
	if err != nil {
		return "", err
	}
	trueBranch, err := emitNode(n.TrueBranch, 0)
	if err != nil {
		return "", err
	}
	if n.FalseBranch == nil {
		return fmt.Sprintf("if %s { %s }", cond, trueBranch), nil
	}
	falseBranch, err := emitNode(n.FalseBranch, 0)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("if %s { %s } else { %s }", cond, trueBranch, falseBranch), nil
}

func emitList(n *ast.ListNode) (string, error) {
	var elems []string
	for _, e := range n.Elements {
		text, err := emitNode(e, 0)
		if err != nil {
			return "", err
		}
		elems = append(elems, text)
	}
	return fmt.Sprintf("vec![%s]", strings.Join(elems, ", ")), nil
}

func emitLiteral(n *ast.LiteralNode) (string, error) {
	switch n.Value.Kind {
	case ast.ValueInteger:
		return strconv.FormatInt(n.Value.Int, 10), nil
	case ast.ValueFloat:
		text := strconv.FormatFloat(n.Value.Float, 'f', -1, 64)
		if !strings.ContainsAny(text, ".e") {
			text += ".0"
		}
		return text, nil
	case ast.ValueString:
		return strconv.Quote(n.Value.Str), nil
	case ast.ValueBoolean:
		return strconv.FormatBool(n.Value.Bool), nil
	default:
		return "None", nil
	}
}

func emitLet(n *ast.LetNode) (string, error) {
	value, err := emitNode(n.Value, 0)
	if err != nil {
		return "", err
	}
	body, err := emitNode(n.Body, 0)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("{ let %s = %s; %s }", n.Name.Name, value, body), nil
}
