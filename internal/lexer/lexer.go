// Package lexer tokenizes funalg expression input: numbers, blade
// literals, the pseudoscalar I and the operator set of the algebra
// core.
package lexer

import "github.com/funvibe/funalg/internal/token"

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position (after current char)
	ch           byte // current char under examination
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token
	switch l.ch {
	case '+':
		tok = l.newToken(token.PLUS)
	case '-':
		tok = l.newToken(token.MINUS)
	case '*':
		tok = l.newToken(token.ASTERISK)
	case '^':
		tok = l.newToken(token.CARET)
	case '|':
		tok = l.newToken(token.PIPE)
	case '@':
		tok = l.newToken(token.AT)
	case '~':
		tok = l.newToken(token.TILDE)
	case '(':
		tok = l.newToken(token.LPAREN)
	case ')':
		tok = l.newToken(token.RPAREN)
	case 0:
		tok = token.Token{Type: token.EOF, Column: l.column}
	default:
		switch {
		case isDigit(l.ch) || l.ch == '.':
			return l.readNumber()
		case l.ch == 'e' && isDigit(l.peekChar()):
			return l.readBlade()
		case l.ch == 'I':
			tok = token.Token{Type: token.PSEUDO, Literal: "I", Column: l.column}
		default:
			tok = token.Token{Type: token.ILLEGAL, Literal: string(l.ch), Column: l.column}
		}
	}

	l.readChar()
	return tok
}

func (l *Lexer) newToken(t token.Type) token.Token {
	return token.Token{Type: t, Literal: string(l.ch), Column: l.column}
}

// readNumber accepts plain decimal literals. There is no exponent
// form: "2e3" is the number 2 adjacent to the blade e3, which the
// parser folds into a coefficient. Final validation is the parser's
// strconv call.
func (l *Lexer) readNumber() token.Token {
	start := l.position
	col := l.column
	for isDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	return token.Token{Type: token.NUMBER, Literal: l.input[start:l.position], Column: col}
}

func (l *Lexer) readBlade() token.Token {
	start := l.position
	col := l.column
	l.readChar() // consume 'e'
	for isDigit(l.ch) {
		l.readChar()
	}
	return token.Token{Type: token.BLADE, Literal: l.input[start:l.position], Column: col}
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
