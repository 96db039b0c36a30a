// Package inference implements the shallow, bottom-up type-tightening pass
// described in spec.md §4.3: each node's type annotation is recomputed from
// its already-inferred children, never from context above it. Running the
// pass twice on the same tree must produce the same result (spec.md §8's
// idempotence invariant) — every Infer* function here is a pure function of
// its argument, so that holds by construction.
package inference

import (
	"github.com/shencraft/shenc/internal/ast"
)

// Infer walks node bottom-up, tightening every mutable type field in place,
// and returns the same node. It is split by node family across this
// package's other files (literals.go, operators.go, collections.go,
// functions.go) so each concern can be read and tested independently.
func Infer(node ast.Node) (ast.Node, error) {
	switch n := node.(type) {
	case *ast.LiteralNode:
		return InferLiteral(n)
	case *ast.SymbolNode:
		return InferSymbol(n)
	case *ast.NilNode:
		return n, nil
	case *ast.BinaryOperationNode:
		return InferBinaryOperation(n)
	case *ast.ListNode:
		return InferList(n)
	case *ast.ApplicationNode:
		return InferApplication(n)
	case *ast.ConditionalNode:
		return InferConditional(n)
	case *ast.LetNode:
		return InferLet(n)
	case *ast.FunctionNode:
		return InferFunction(n)
	case *ast.LambdaNode:
		return InferLambda(n)
	default:
		return node, nil
	}
}

// inferChildren runs Infer over each element of nodes in place, stopping at
// the first error.
func inferChildren(nodes []ast.Node) ([]ast.Node, error) {
	out := make([]ast.Node, len(nodes))
	for i, child := range nodes {
		inferred, err := Infer(child)
		if err != nil {
			return nil, err
		}
		out[i] = inferred
	}
	return out, nil
}
