// Package ast holds the expression tree for funalg input.
package ast

import (
	"strconv"

	"github.com/funvibe/funalg/internal/token"
)

type Expression interface {
	TokenLiteral() string
	String() string
}

// NumberLiteral is a scalar constant.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// BladeLiteral is a unit basis blade like e1 or e12, with an optional
// folded coefficient from an adjacent number: 2e12.
type BladeLiteral struct {
	Token       token.Token
	Indices     []int // 1-based basis vector indices, ascending
	Coefficient float64
}

func (b *BladeLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BladeLiteral) String() string {
	if b.Coefficient == 1 {
		return b.Token.Literal
	}
	return strconv.FormatFloat(b.Coefficient, 'g', -1, 64) + b.Token.Literal
}

// PseudoLiteral is the universal pseudoscalar I.
type PseudoLiteral struct {
	Token token.Token
}

func (p *PseudoLiteral) TokenLiteral() string { return p.Token.Literal }
func (p *PseudoLiteral) String() string       { return "I" }

// PrefixExpression is -x or ~x.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (p *PrefixExpression) TokenLiteral() string { return p.Token.Literal }
func (p *PrefixExpression) String() string {
	return "(" + p.Operator + p.Right.String() + ")"
}

// InfixExpression is x op y for the enumerated operator set.
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (i *InfixExpression) TokenLiteral() string { return i.Token.Literal }
func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}
