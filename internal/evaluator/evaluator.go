// Package evaluator walks funalg expression trees and produces algebra
// values. Blade literals materialize in their minimal Euclidean space,
// so any mixed-grade expression exercises the union resolver: e1 + e123
// adds a 1D value to a 3D value and comes back tagged 3D.
package evaluator

import (
	"fmt"

	"github.com/funvibe/funalg/internal/ast"
	"github.com/funvibe/funalg/pkg/algebra"
	"github.com/funvibe/funalg/pkg/multivector"
	"github.com/funvibe/funalg/pkg/space"
)

// Eval reduces an expression to an algebra element. Scalars live in
// the 0-dimensional space; the interop protocol widens them on demand.
func Eval(expr ast.Expression) (algebra.Element, error) {
	switch node := expr.(type) {
	case *ast.NumberLiteral:
		return multivector.FromScalar(space.Tag{}, node.Value), nil

	case *ast.BladeLiteral:
		return evalBlade(node)

	case *ast.PseudoLiteral:
		return algebra.I, nil

	case *ast.PrefixExpression:
		return evalPrefix(node)

	case *ast.InfixExpression:
		return evalInfix(node)

	default:
		return nil, fmt.Errorf("evaluator: unknown node %T", expr)
	}
}

func evalBlade(node *ast.BladeLiteral) (algebra.Element, error) {
	dim := node.Indices[len(node.Indices)-1] // indices ascend
	m, err := multivector.Basis(space.Euclidean(dim), node.Indices...)
	if err != nil {
		return nil, err
	}
	if node.Coefficient != 1 {
		m = m.Scale(node.Coefficient)
	}
	return m, nil
}

func evalPrefix(node *ast.PrefixExpression) (algebra.Element, error) {
	right, err := Eval(node.Right)
	if err != nil {
		return nil, err
	}
	if _, ok := right.(algebra.Universal); ok {
		return nil, fmt.Errorf("evaluator: %s needs a tagged operand, not I", node.Operator)
	}
	switch node.Operator {
	case "-":
		// Negation is multiplication by the scalar -1; the resolver
		// widens the scalar into the operand's space.
		return algebra.Mul(multivector.FromScalar(space.Tag{}, -1), right)
	case "~":
		return algebra.Reverse(right)
	default:
		return nil, fmt.Errorf("evaluator: unknown prefix operator %q", node.Operator)
	}
}

var infixOps = map[string]func(a, b algebra.Element) (algebra.Element, error){
	"+": algebra.Add,
	"-": algebra.Sub,
	"*": algebra.Mul,
	"^": algebra.Wedge,
	"|": algebra.Dot,
	"@": algebra.Apply,
}

func evalInfix(node *ast.InfixExpression) (algebra.Element, error) {
	left, err := Eval(node.Left)
	if err != nil {
		return nil, err
	}
	right, err := Eval(node.Right)
	if err != nil {
		return nil, err
	}
	op, ok := infixOps[node.Operator]
	if !ok {
		return nil, fmt.Errorf("evaluator: unknown operator %q", node.Operator)
	}
	return op(left, right)
}
