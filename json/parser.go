package json

import (
	"errors"
	"fmt"
	"strconv"
)

// Parser assembles a document tree from the Lexer's token stream. It keeps
// exactly one token of lookahead and never backtracks; the first lexical or
// grammatical violation aborts the parse and no partial tree is returned.
//
// The grammar is plain JSON minus trailing commas, with one restriction:
// the document itself must be an object.
//
//	document := object
//	object   := '{' [ member (',' member)* ] '}'
//	member   := STRING ':' value
//	array    := '[' [ value (',' value)* ] ']'
//	value    := object | array | STRING | NUMBER | BOOL | NULL
type Parser struct {
	lexer *Lexer
	tok   Token
}

// NewParser returns a Parser reading from lexer. A Parser is good for a
// single Parse call.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{lexer: lexer}
}

// Parse consumes the whole input and returns the root object. Input after
// the closing brace of the root is an error.
func (p *Parser) Parse() (*Object, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	obj, err := p.parseObject()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, p.errorf("end of input")
	}
	return obj, nil
}

func (p *Parser) parseObject() (*Object, error) {
	if p.tok.Type != TokenLeftBrace {
		return nil, p.errorf("'{'")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	obj := NewObject()
	if p.tok.Type == TokenRightBrace {
		return obj, p.advance()
	}
	for {
		if p.tok.Type != TokenString {
			return nil, p.errorf("object key")
		}
		key := p.tok.Value
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Type != TokenColon {
			return nil, p.errorf("':'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.AddValue(key, value)
		switch p.tok.Type {
		case TokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenRightBrace:
			return obj, p.advance()
		default:
			return nil, p.errorf("',' or '}'")
		}
	}
}

func (p *Parser) parseArray() (*Array, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	arr := NewArray()
	if p.tok.Type == TokenRightBracket {
		return arr, p.advance()
	}
	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.AddValue(value)
		switch p.tok.Type {
		case TokenComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case TokenRightBracket:
			return arr, p.advance()
		default:
			return nil, p.errorf("',' or ']'")
		}
	}
}

func (p *Parser) parseValue() (Value, error) {
	switch p.tok.Type {
	case TokenLeftBrace:
		return p.parseObject()
	case TokenLeftBracket:
		return p.parseArray()
	case TokenString:
		v := NewString(p.tok.Value)
		return v, p.advance()
	case TokenNumber:
		f, err := strconv.ParseFloat(p.tok.Value, 64)
		// Out-of-range literals saturate to ±Inf rather than failing; the
		// lexer has already vouched for the syntax.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, p.errorf("number")
		}
		return NewNumber(f), p.advance()
	case TokenBool:
		v := NewBool(p.tok.Value == "true")
		return v, p.advance()
	case TokenNull:
		v := NewNull()
		return v, p.advance()
	default:
		return nil, p.errorf("value")
	}
}

// advance pulls the next token from the lexer into the lookahead slot.
func (p *Parser) advance() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// errorf builds a ParseError at the lookahead token's position, naming the
// construct the grammar expected there.
func (p *Parser) errorf(expected string) error {
	return &ParseError{
		Line:    p.tok.Line,
		Col:     p.tok.Col,
		Message: fmt.Sprintf("expected %s, got %s", expected, p.tok.Type),
	}
}
