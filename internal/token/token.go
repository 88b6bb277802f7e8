package token

type Type string

const (
	ILLEGAL Type = "ILLEGAL"
	EOF     Type = "EOF"

	NUMBER Type = "NUMBER" // 2, 3.5, 0.25
	BLADE  Type = "BLADE"  // e1, e12, e123
	PSEUDO Type = "PSEUDO" // I

	PLUS     Type = "+"
	MINUS    Type = "-"
	ASTERISK Type = "*"
	CARET    Type = "^"
	PIPE     Type = "|"
	AT       Type = "@"
	TILDE    Type = "~"

	LPAREN Type = "("
	RPAREN Type = ")"
)

type Token struct {
	Type    Type
	Literal string
	Column  int // 1-based position in the input line
}
