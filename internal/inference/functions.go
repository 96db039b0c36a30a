package inference

import "github.com/shencraft/shenc/internal/ast"

// InferFunction recurses into the body and tightens ReturnType to the
// body's inferred type (spec.md §4.3: "return_type = body.infer_type()").
func InferFunction(n *ast.FunctionNode) (ast.Node, error) {
	body, err := Infer(n.Body)
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.ReturnType = body.Type()
	return n, nil
}

// InferLambda mirrors InferFunction for anonymous functions.
func InferLambda(n *ast.LambdaNode) (ast.Node, error) {
	body, err := Infer(n.Body)
	if err != nil {
		return nil, err
	}
	n.Body = body
	n.ReturnType = body.Type()
	return n, nil
}

// InferApplication recurses into the callee and every argument. The call
// expression's own type stays Symbol (spec.md leaves call-site return type
// unresolved — the callee's signature is not looked up during inference).
func InferApplication(n *ast.ApplicationNode) (ast.Node, error) {
	fn, err := Infer(n.Func)
	if err != nil {
		return nil, err
	}
	n.Func = fn
	args, err := inferChildren(n.Args)
	if err != nil {
		return nil, err
	}
	n.Args = args
	return n, nil
}

// InferConditional recurses into all three children; the conditional's own
// type tracks the true branch (spec.md §9 Open Question 3), which
// ast.ConditionalNode.Type() already implements, so there is nothing further
// to tighten here beyond the children themselves.
func InferConditional(n *ast.ConditionalNode) (ast.Node, error) {
	cond, err := Infer(n.Condition)
	if err != nil {
		return nil, err
	}
	n.Condition = cond

	trueBranch, err := Infer(n.TrueBranch)
	if err != nil {
		return nil, err
	}
	n.TrueBranch = trueBranch

	if n.FalseBranch != nil {
		falseBranch, err := Infer(n.FalseBranch)
		if err != nil {
			return nil, err
		}
		n.FalseBranch = falseBranch
	}
	return n, nil
}

// InferLet recurses into the bound value and the body, tightening the
// binding's own type hint to match its value.
func InferLet(n *ast.LetNode) (ast.Node, error) {
	value, err := Infer(n.Value)
	if err != nil {
		return nil, err
	}
	n.Value = value
	n.Name.TypeHint = value.Type()

	body, err := Infer(n.Body)
	if err != nil {
		return nil, err
	}
	n.Body = body
	return n, nil
}
