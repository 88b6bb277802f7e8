// Package parser builds expression trees from funalg input with a
// small Pratt parser over the lexer's token stream.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/funvibe/funalg/internal/ast"
	"github.com/funvibe/funalg/internal/lexer"
	"github.com/funvibe/funalg/internal/token"
)

// Operator precedence, lowest first. The wedge binds tighter than the
// other products so e1^e2|e3 reads as (e1^e2)|e3.
const (
	LOWEST = iota
	SUM     // + -
	PRODUCT // * | @
	WEDGE   // ^
	PREFIX  // -x ~x
)

var precedences = map[token.Type]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.PIPE:     PRODUCT,
	token.AT:       PRODUCT,
	token.CARET:    WEDGE,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []string

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.NUMBER: p.parseNumberLiteral,
		token.BLADE:  p.parseBladeLiteral,
		token.PSEUDO: p.parsePseudoLiteral,
		token.MINUS:  p.parsePrefixExpression,
		token.TILDE:  p.parsePrefixExpression,
		token.LPAREN: p.parseGroupedExpression,
	}
	p.infixParseFns = map[token.Type]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.PIPE:     p.parseInfixExpression,
		token.AT:       p.parseInfixExpression,
		token.CARET:    p.parseInfixExpression,
	}

	// Populate curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Parse consumes the whole input as a single expression.
func Parse(input string) (ast.Expression, error) {
	p := New(lexer.New(input))
	expr := p.parseExpression(LOWEST)
	if expr != nil && !p.peekTokenIs(token.EOF) {
		p.addError(p.peekToken, "unexpected %q", p.peekToken.Literal)
	}
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parse: %s", strings.Join(p.errors, "; "))
	}
	return expr, nil
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) addError(tok token.Token, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, fmt.Sprintf("%s at column %d", msg, tok.Column))
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.addError(p.curToken, "unexpected %q", p.curToken.Literal)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.EOF) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}
	return leftExp
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.addError(p.curToken, "invalid number %q", p.curToken.Literal)
		return nil
	}
	// An adjacent blade folds the number into its coefficient: 2e12.
	if p.peekTokenIs(token.BLADE) {
		p.nextToken()
		blade := p.parseBladeLiteral()
		if blade == nil {
			return nil
		}
		bl := blade.(*ast.BladeLiteral)
		bl.Coefficient = value
		return bl
	}
	return &ast.NumberLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBladeLiteral() ast.Expression {
	digits := p.curToken.Literal[1:] // strip the leading 'e'
	indices := make([]int, 0, len(digits))
	prev := 0
	for _, d := range digits {
		idx := int(d - '0')
		if idx == 0 {
			p.addError(p.curToken, "blade index 0 in %q", p.curToken.Literal)
			return nil
		}
		if idx <= prev {
			p.addError(p.curToken, "blade indices must ascend in %q", p.curToken.Literal)
			return nil
		}
		indices = append(indices, idx)
		prev = idx
	}
	return &ast.BladeLiteral{Token: p.curToken, Indices: indices, Coefficient: 1}
}

func (p *Parser) parsePseudoLiteral() ast.Expression {
	return &ast.PseudoLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}
	p.nextToken()
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}
	precedence := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.peekTokenIs(token.RPAREN) {
		p.addError(p.peekToken, "expected )")
		return nil
	}
	p.nextToken()
	return expr
}
