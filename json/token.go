package json

import "fmt"

// TokenType classifies a lexeme produced by the Lexer.
type TokenType int

const (
	TokenLeftBrace TokenType = iota
	TokenRightBrace
	TokenLeftBracket
	TokenRightBracket
	TokenColon
	TokenComma
	TokenString
	TokenNumber
	TokenBool
	TokenNull
	TokenEOF
)

// String returns a readable name for the token type, used in error messages.
func (t TokenType) String() string {
	switch t {
	case TokenLeftBrace:
		return "'{'"
	case TokenRightBrace:
		return "'}'"
	case TokenLeftBracket:
		return "'['"
	case TokenRightBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenBool:
		return "bool"
	case TokenNull:
		return "null"
	case TokenEOF:
		return "end of input"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token is a single classified lexeme. Value holds the decoded text for
// strings, the raw characters for numbers, bools and null, and the literal
// character for structural tokens. Line and Col are 1-based and point at the
// first character of the lexeme; for strings that is the opening quote.
type Token struct {
	Type  TokenType
	Value string
	Line  int
	Col   int
}
