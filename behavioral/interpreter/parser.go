package interpreter

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func lex(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, token{tokNumber, string(runes[start:i]), start})
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{tokIdent, string(runes[start:i]), start})
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{tokOp, string(r), i})
			i++
		case r == '(':
			tokens = append(tokens, token{tokLParen, "(", i})
			i++
		case r == ')':
			tokens = append(tokens, token{tokRParen, ")", i})
			i++
		default:
			return nil, &ParseError{Input: input, Pos: i, Msg: "unexpected character " + strconv.QuoteRune(r)}
		}
	}

	return append(tokens, token{tokEOF, "", len(runes)}), nil
}

type parser struct {
	input  string
	tokens []token
	pos    int
}

// Parse builds an Expression tree from input.
func Parse(input string) (Expression, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{input: input, tokens: tokens}
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, "unexpected %q", tok.text)
	}
	return expr, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) advance() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...any) *ParseError {
	return &ParseError{Input: p.input, Pos: tok.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expr() (Expression, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for tok := p.peek(); tok.kind == tokOp && (tok.text == "+" || tok.text == "-"); tok = p.peek() {
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: Op(tok.text[0]), Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) term() (Expression, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for tok := p.peek(); tok.kind == tokOp && (tok.text == "*" || tok.text == "/"); tok = p.peek() {
		p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: Op(tok.text[0]), Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) unary() (Expression, error) {
	if tok := p.peek(); tok.kind == tokOp && tok.text == "-" {
		p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return Negate{Operand: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (Expression, error) {
	tok := p.advance()
	switch tok.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, p.errorf(tok, "invalid number %q", tok.text)
		}
		return Number(v), nil
	case tokIdent:
		return Variable(tok.text), nil
	case tokLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if closing := p.advance(); closing.kind != tokRParen {
			return nil, p.errorf(closing, "expected ')'")
		}
		return inner, nil
	case tokEOF:
		return nil, p.errorf(tok, "unexpected end of input")
	default:
		return nil, p.errorf(tok, "unexpected %q", tok.text)
	}
}
