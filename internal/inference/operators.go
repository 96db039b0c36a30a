package inference

import (
	"github.com/shencraft/shenc/internal/ast"
	"github.com/shencraft/shenc/internal/diagnostics"
)

var comparisonOperators = map[string]bool{
	"=": true, "<": true, ">": true, "<=": true, ">=": true,
}

// InferBinaryOperation recurses into both operands, then recomputes
// ResultType per spec.md §4.3: comparison operators always yield Boolean;
// arithmetic operators yield Float if either operand is Float or is a free
// (untyped) symbol, else Integer. Two concrete operand types that differ and
// are not both numeric (e.g. a String next to a number) are a type error;
// ast.TryConvert is not consulted.
func InferBinaryOperation(n *ast.BinaryOperationNode) (ast.Node, error) {
	left, err := Infer(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := Infer(n.Right)
	if err != nil {
		return nil, err
	}
	n.Left, n.Right = left, right

	if comparisonOperators[n.Operator] {
		n.ResultType = ast.Boolean
		return n, nil
	}

	lt, rt := left.Type(), right.Type()
	// An untyped operand (Symbol) is compatible with anything; only two
	// concrete, differing, non-numeric types are an unreconcilable mismatch.
	concreteMismatch := lt != ast.Symbol && rt != ast.Symbol && lt != rt && !(isNumeric(lt) && isNumeric(rt))
	if concreteMismatch {
		return nil, diagnostics.TypeError(lt, rt)
	}
	if lt == ast.Float || rt == ast.Float || lt == ast.Symbol || rt == ast.Symbol {
		n.ResultType = ast.Float
	} else {
		n.ResultType = ast.Integer
	}
	return n, nil
}

func isNumeric(t ast.ShenType) bool {
	return t == ast.Integer || t == ast.Float
}
