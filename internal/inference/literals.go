package inference

import "github.com/shencraft/shenc/internal/ast"

// InferLiteral is a no-op: a literal's type is fixed by its Value.Kind at
// parse time and never changes.
func InferLiteral(n *ast.LiteralNode) (ast.Node, error) {
	return n, nil
}

// InferSymbol tightens a bare symbol whose name looks like a number or a
// boolean keyword into the corresponding type hint, e.g. a parameter passed
// the literal text "42" without quotes. Symbols that don't match any literal
// shape keep the Symbol type hint untouched.
func InferSymbol(n *ast.SymbolNode) (ast.Node, error) {
	if n.TypeHint != ast.Symbol {
		return n, nil
	}
	for _, candidate := range []ast.ShenType{ast.Integer, ast.Float, ast.Boolean} {
		if converted, ok := ast.TryConvert(n, candidate); ok {
			if lit, isLit := converted.(*ast.LiteralNode); isLit {
				n.TypeHint = lit.Value.Type()
				break
			}
		}
	}
	return n, nil
}
