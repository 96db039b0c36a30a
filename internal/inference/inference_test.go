package inference

import (
	"testing"

	"github.com/shencraft/shenc/internal/ast"
	"github.com/shencraft/shenc/internal/lexer"
	"github.com/shencraft/shenc/internal/parser"
)

func inferSource(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		t.Fatalf("lexer.Tokenize(%q) failed: %v", src, err)
	}
	form, err := parser.Parse(tokens)
	if err != nil {
		t.Fatalf("parser.Parse(%q) failed: %v", src, err)
	}
	node, err := Infer(form)
	if err != nil {
		t.Fatalf("Infer(%q) failed: %v", src, err)
	}
	return node
}

func TestInferBinaryOperationFloatWins(t *testing.T) {
	node := inferSource(t, "(+ 1 2.5)")
	op := node.(*ast.BinaryOperationNode)
	if op.ResultType != ast.Float {
		t.Errorf("ResultType = %s, want Float", op.ResultType)
	}
}

func TestInferBinaryOperationComparisonIsBoolean(t *testing.T) {
	node := inferSource(t, "(= 1 2)")
	op := node.(*ast.BinaryOperationNode)
	if op.ResultType != ast.Boolean {
		t.Errorf("ResultType = %s, want Boolean", op.ResultType)
	}
}

func TestInferFunctionReturnTypeFollowsBody(t *testing.T) {
	// x is a free symbol and 1 parses as a Float literal, so both operands
	// force Float (spec.md §4.3's free-symbol clause).
	node := inferSource(t, "(defun add (x y) (+ x 1))")
	fn := node.(*ast.FunctionNode)
	if fn.ReturnType != ast.Float {
		t.Errorf("ReturnType = %s, want Float", fn.ReturnType)
	}
}

func TestInferListUnifiesIntAndFloat(t *testing.T) {
	// Number tokens always parse as Float, so the Integer elements are built
	// directly rather than from source text.
	node, err := Infer(&ast.ListNode{Elements: []ast.Node{
		&ast.LiteralNode{Value: ast.IntegerValue(1)},
		&ast.LiteralNode{Value: ast.FloatValue(2.5)},
		&ast.LiteralNode{Value: ast.IntegerValue(3)},
	}})
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	list := node.(*ast.ListNode)
	if list.ElementType != ast.Float {
		t.Errorf("ElementType = %s, want Float", list.ElementType)
	}
	for i, elem := range list.Elements {
		if elem.Type() != ast.Float {
			t.Errorf("element %d has type %s, want Float", i, elem.Type())
		}
	}
}

func TestInferSymbolNamedLikeNumber(t *testing.T) {
	sym := &ast.SymbolNode{Name: "42", TypeHint: ast.Symbol}
	node, err := InferSymbol(sym)
	if err != nil {
		t.Fatalf("InferSymbol failed: %v", err)
	}
	if node.Type() != ast.Integer {
		t.Errorf("Type() = %s, want Integer", node.Type())
	}
}

func TestInferIsIdempotent(t *testing.T) {
	node := inferSource(t, "(defun add (x y) (+ x y))")
	once, err := Infer(node)
	if err != nil {
		t.Fatalf("first re-infer failed: %v", err)
	}
	twice, err := Infer(once)
	if err != nil {
		t.Fatalf("second re-infer failed: %v", err)
	}
	if once.(*ast.FunctionNode).ReturnType != twice.(*ast.FunctionNode).ReturnType {
		t.Error("Infer should be idempotent: re-running changed ReturnType")
	}
}
