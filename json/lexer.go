package json

import (
	"fmt"
	"strings"
)

// Lexer scans JSON text into tokens, one per NextToken call. It tracks the
// 1-based line and column of every character it consumes: a newline bumps
// the line and resets the column, every other character bumps the column,
// including characters inside strings and numbers.
//
// A Lexer holds mutable cursor state and must not be shared between parses.
type Lexer struct {
	text   string
	cursor int
	line   int
	col    int
}

// NewLexer returns a Lexer positioned at the start of text.
func NewLexer(text string) *Lexer {
	return &Lexer{text: text, line: 1, col: 1}
}

// NextToken skips insignificant whitespace and returns the next token. When
// no non-whitespace input remains it returns a TokenEOF token. A lexical
// violation (unterminated string, malformed escape or number, unknown
// keyword, stray character) returns a *ParseError.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()
	if l.done() {
		return Token{Type: TokenEOF, Line: l.line, Col: l.col}, nil
	}
	line, col := l.line, l.col
	switch c := l.curr(); c {
	case '{':
		l.next()
		return Token{TokenLeftBrace, "{", line, col}, nil
	case '}':
		l.next()
		return Token{TokenRightBrace, "}", line, col}, nil
	case '[':
		l.next()
		return Token{TokenLeftBracket, "[", line, col}, nil
	case ']':
		l.next()
		return Token{TokenRightBracket, "]", line, col}, nil
	case ':':
		l.next()
		return Token{TokenColon, ":", line, col}, nil
	case ',':
		l.next()
		return Token{TokenComma, ",", line, col}, nil
	case '"':
		return l.lexString()
	case 't':
		return l.lexKeyword(TokenBool, "true")
	case 'f':
		return l.lexKeyword(TokenBool, "false")
	case 'n':
		return l.lexKeyword(TokenNull, "null")
	default:
		if c == '+' || c == '-' || isDigit(c) {
			return l.lexNumber()
		}
		return Token{}, l.errorf("unexpected character %q", c)
	}
}

// lexString scans a double-quoted string. The token's position is the
// opening quote; its value is the decoded content.
func (l *Lexer) lexString() (Token, error) {
	line, col := l.line, l.col
	l.next() // opening quote
	var sb strings.Builder
	for {
		if l.done() {
			return Token{}, l.errorf("unterminated string")
		}
		c := l.next()
		switch {
		case c == '"':
			return Token{TokenString, sb.String(), line, col}, nil
		case c == '\\':
			if err := l.lexEscape(&sb); err != nil {
				return Token{}, err
			}
		case c < 0x20:
			return Token{}, l.errorf("control character 0x%02x in string", c)
		default:
			sb.WriteByte(c)
		}
	}
}

// lexEscape decodes the sequence following a backslash. Only `"`, `\` and
// `/` collapse to the bare character. `\u` must be followed by exactly four
// hexadecimal digits, which are kept as literal text rather than decoded to
// a code point. Any other escape keeps the backslash and the character
// unchanged. The last two rules match the behavior existing documents
// depend on; see the package comment.
func (l *Lexer) lexEscape(sb *strings.Builder) error {
	if l.done() {
		return l.errorf("unterminated string")
	}
	c := l.next()
	switch c {
	case '"', '\\', '/':
		sb.WriteByte(c)
	case 'u':
		hex := l.hexDigits()
		if len(hex) != 4 {
			return l.errorf("unicode escape wants 4 hex digits, got %d", len(hex))
		}
		sb.WriteString(hex)
	default:
		sb.WriteByte('\\')
		sb.WriteByte(c)
	}
	return nil
}

// hexDigits consumes the maximal run of contiguous hexadecimal digits.
func (l *Lexer) hexDigits() string {
	start := l.cursor
	for !l.done() && isHexDigit(l.curr()) {
		l.next()
	}
	return l.text[start:l.cursor]
}

// lexKeyword matches the exact character sequence want, case-sensitively.
func (l *Lexer) lexKeyword(typ TokenType, want string) (Token, error) {
	line, col := l.line, l.col
	for i := 0; i < len(want); i++ {
		if l.done() || l.curr() != want[i] {
			return Token{}, l.errorf("expected keyword %q", want)
		}
		l.next()
	}
	return Token{typ, want, line, col}, nil
}

// numberState is one stage of the numeric literal scan.
type numberState int

const (
	numberSign numberState = iota
	numberDigits
	numberFraction
	numberExponent
	numberEnd
)

// lexNumber drives the state machine over a numeric literal: optional
// leading sign, integer digits, optional fraction, optional exponent. The
// raw characters become the token value; conversion happens in the Parser.
func (l *Lexer) lexNumber() (Token, error) {
	line, col := l.line, l.col
	var sb strings.Builder
	state := numberSign
	for state != numberEnd {
		next, err := l.numberStep(state, &sb)
		if err != nil {
			return Token{}, err
		}
		state = next
	}
	return Token{TokenNumber, sb.String(), line, col}, nil
}

// numberStep consumes the input belonging to state and returns the next
// state. Every digit group requires at least one digit, a sign is only
// absorbed at the start of the literal or right after the exponent marker,
// and the fraction must come before the exponent.
func (l *Lexer) numberStep(state numberState, sb *strings.Builder) (numberState, error) {
	switch state {
	case numberSign:
		if c := l.curr(); c == '+' || c == '-' {
			sb.WriteByte(l.next())
		}
		return numberDigits, nil
	case numberDigits:
		if err := l.digitRun(sb); err != nil {
			return numberEnd, err
		}
		if l.done() || l.isNumberEnd() {
			return numberEnd, nil
		}
		switch c := l.curr(); c {
		case '.':
			sb.WriteByte(l.next())
			return numberFraction, nil
		case 'e', 'E':
			sb.WriteByte(l.next())
			return numberExponent, nil
		default:
			return numberEnd, l.errorf("unexpected character %q in number", c)
		}
	case numberFraction:
		if err := l.digitRun(sb); err != nil {
			return numberEnd, err
		}
		if l.done() || l.isNumberEnd() {
			return numberEnd, nil
		}
		switch c := l.curr(); c {
		case 'e', 'E':
			sb.WriteByte(l.next())
			return numberExponent, nil
		default:
			return numberEnd, l.errorf("unexpected character %q in number", c)
		}
	default: // numberExponent
		if !l.done() {
			if c := l.curr(); c == '+' || c == '-' {
				sb.WriteByte(l.next())
			}
		}
		if err := l.digitRun(sb); err != nil {
			return numberEnd, err
		}
		if l.done() || l.isNumberEnd() {
			return numberEnd, nil
		}
		return numberEnd, l.errorf("unexpected character %q in number", l.curr())
	}
}

// digitRun consumes a run of decimal digits, requiring at least one.
func (l *Lexer) digitRun(sb *strings.Builder) error {
	n := 0
	for !l.done() && isDigit(l.curr()) {
		sb.WriteByte(l.next())
		n++
	}
	if n == 0 {
		if l.done() {
			return l.errorf("unexpected end of input in number")
		}
		return l.errorf("expected digit, got %q", l.curr())
	}
	return nil
}

// isNumberEnd reports whether the current character may legally follow a
// completed numeric literal.
func (l *Lexer) isNumberEnd() bool {
	switch l.curr() {
	case ' ', '\t', '\n', '\r', ',', '}', ']':
		return true
	}
	return false
}

func (l *Lexer) skipWhitespace() {
	for !l.done() {
		switch l.curr() {
		case ' ', '\t', '\n', '\r':
			l.next()
		default:
			return
		}
	}
}

func (l *Lexer) done() bool { return l.cursor >= len(l.text) }

func (l *Lexer) curr() byte { return l.text[l.cursor] }

// next consumes the current character and updates the position counters.
func (l *Lexer) next() byte {
	c := l.text[l.cursor]
	l.cursor++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) errorf(format string, args ...any) error {
	return &ParseError{Line: l.line, Col: l.col, Message: fmt.Sprintf(format, args...)}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
