package inference

import (
	"github.com/shencraft/shenc/internal/ast"
	"github.com/shencraft/shenc/internal/diagnostics"
)

// InferList recurses into every element, then unifies their types into a
// single ElementType. The first element's type is the target; every later
// element must either already match it or be convertible to it via
// ast.TryConvert. A Float element after Integer ones widens the target to
// Float and converts the earlier elements too, so a list mixing integer and
// float literals unifies to Float. A list with no convertible unification is
// a type error.
func InferList(n *ast.ListNode) (ast.Node, error) {
	elems, err := inferChildren(n.Elements)
	if err != nil {
		return nil, err
	}
	n.Elements = elems

	if len(elems) == 0 {
		n.ElementType = ast.Symbol
		return n, nil
	}

	elemType := elems[0].Type()
	for i := 1; i < len(elems); i++ {
		if elems[i].Type() == elemType {
			continue
		}
		if elemType == ast.Integer && elems[i].Type() == ast.Float {
			// Float absorbs earlier ints: restart with Float as the target so
			// the elements before i are widened too.
			elemType = ast.Float
			i = -1
			continue
		}
		converted, ok := ast.TryConvert(elems[i], elemType)
		if !ok {
			return nil, diagnostics.TypeError(elems[i].Type(), elemType)
		}
		elems[i] = converted
	}
	n.ElementType = elemType
	n.Elements = elems
	return n, nil
}
