// Package eval computes truth values of formulas under assignments.
package eval

import (
	"fmt"

	"github.com/truthtab/go-prop/ast"
)

// Assignment maps every atomic variable of a formula to a boolean. It is
// one row of a truth table. Assignments are constructed fresh per row and
// never mutated afterwards.
type Assignment map[string]bool

// Eval returns the truth value of n under a. The assignment must bind
// every variable reachable from n; a missing binding is a precondition
// violation and panics. Both operands of a binary connective are always
// evaluated, there is no short-circuiting.
func Eval(n *ast.Node, a Assignment) bool {
	switch n.Kind {
	case ast.VarKind:
		b, ok := a[n.Name]
		if !ok {
			panic(fmt.Errorf("assignment lacks binding for variable %s", n.Name))
		}
		return b
	case ast.NotKind:
		return !Eval(n.Child, a)
	case ast.BinaryKind:
		left := Eval(n.Left, a)
		right := Eval(n.Right, a)
		switch n.Op {
		case ast.And:
			return left && right
		case ast.Or:
			return left || right
		case ast.Imp:
			return !left || right
		case ast.Bicond:
			return left == right
		default:
			panic(fmt.Errorf("unknown op %d", n.Op))
		}
	default:
		panic(fmt.Errorf("unknown kind %d", n.Kind))
	}
}
