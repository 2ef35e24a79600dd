package parser

import (
	"fmt"
	"strconv"

	"github.com/agenthands/ncalc/pkg/compiler/lexer"
	"github.com/agenthands/ncalc/pkg/vm"
	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds the number of nested parenthesized groups.
const DefaultMaxDepth = 256

// ErrTooDeep is returned when parentheses nest deeper than the configured limit.
var ErrTooDeep = fmt.Errorf("%w: expression nested too deeply", vm.ErrSyntax)

// TokenSource is a finite, random-accessible token sequence.
// *lexer.Sequence implements it.
type TokenSource interface {
	Len() int
	At(i int) lexer.Token
	Literal(tok lexer.Token) string
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger traces reductions at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(p *Parser) { p.log = l }
}

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser recognizes and evaluates in a single pass:
//
//	baseExpr := literal | '(' expr ')'
//	expr     := unop baseExpr | baseExpr (binop baseExpr)?
//
// Each group carries at most one operator, so "1+2+3" is rejected and must
// be written "(1+2)+3". The top level is parsed as the body of a group.
//
// A Parser is not safe for concurrent use; each Parse call evaluates on its
// own Machine.
type Parser struct {
	tokens TokenSource
	idx    int
	m      *vm.Machine

	depth    int
	maxDepth int
	log      zerolog.Logger
}

// NewParser returns a parser over tokens.
func NewParser(tokens TokenSource, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse evaluates the whole token sequence and returns its value.
func (p *Parser) Parse() (int64, error) {
	p.reset()
	p.m = vm.GetMachine()
	defer func() {
		vm.PutMachine(p.m)
		p.m = nil
	}()

	res, err := p.parse()
	if err != nil {
		p.log.Debug().Err(err).Int("cursor", p.idx).Msg("parse failed")
		return 0, err
	}
	return res, nil
}

func (p *Parser) parse() (int64, error) {
	pushed, err := p.consumeExpression()
	if err != nil {
		return 0, err
	}
	if pushed {
		if err := p.solve(); err != nil {
			return 0, err
		}
	}

	if p.idx < p.tokens.Len() {
		tok := p.tokens.At(p.idx)
		return 0, fmt.Errorf("%w: unexpected %v at offset %d", vm.ErrSyntax, tok.Kind, tok.Offset)
	}
	return p.m.Result()
}

func (p *Parser) reset() {
	p.idx = 0
	p.depth = 0
}

// next returns the current token and advances. At the end of input it
// reports false and leaves the cursor where it is.
func (p *Parser) next() (lexer.Token, bool) {
	if p.idx >= p.tokens.Len() {
		return lexer.Token{}, false
	}
	tok := p.tokens.At(p.idx)
	p.idx++
	return tok, true
}

func (p *Parser) rewind() {
	p.idx--
}

// expect consumes one token of kind k.
func (p *Parser) expect(k lexer.Kind, what string) error {
	tok, ok := p.next()
	if !ok {
		return fmt.Errorf("%w: expected %s, got %v", vm.ErrSyntax, what, lexer.KindEOF)
	}
	if !tok.Is(k) {
		return fmt.Errorf("%w: expected %s, got %v at offset %d", vm.ErrSyntax, what, tok.Kind, tok.Offset)
	}
	return nil
}

func (p *Parser) consumeLeftParenthesis() error {
	return p.expect(lexer.KindLParen, "opening parenthesis")
}

func (p *Parser) consumeRightParenthesis() error {
	return p.expect(lexer.KindRParen, "closing parenthesis")
}

func (p *Parser) consumeLiteral() (bool, error) {
	tok, ok := p.next()
	if !ok {
		return false, nil
	}
	if !tok.Is(lexer.KindInteger) {
		p.rewind()
		return false, nil
	}

	lit := p.tokens.Literal(tok)
	if !isDigits(lit) {
		return false, fmt.Errorf("%w %q at offset %d", vm.ErrMalformedLiteral, lit, tok.Offset)
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w %q at offset %d", vm.ErrMalformedLiteral, lit, tok.Offset)
	}
	p.m.PushOperand(v)
	return true, nil
}

// isDigits reports whether s is a non-empty run of decimal digits.
// strconv.ParseInt alone would also accept a leading sign.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) consumeOperator(arity vm.Arity, accept func(lexer.Kind) bool) (bool, error) {
	tok, ok := p.next()
	if !ok {
		return false, nil
	}
	if !accept(tok.Kind) {
		p.rewind()
		return false, nil
	}

	op, err := BuildOperator(tok.Kind, arity)
	if err != nil {
		return false, err
	}
	p.m.PushOperator(op)
	return true, nil
}

func (p *Parser) consumeUnop() (bool, error) {
	return p.consumeOperator(vm.Unary, isUnop)
}

func (p *Parser) consumeBinop() (bool, error) {
	return p.consumeOperator(vm.Binary, isBinop)
}

// consumeBaseExpression reads a literal or a parenthesized group. A group
// that pushed an operator is reduced once its closing parenthesis is read.
func (p *Parser) consumeBaseExpression() error {
	ok, err := p.consumeLiteral()
	if err != nil || ok {
		return err
	}

	if err := p.consumeLeftParenthesis(); err != nil {
		return err
	}
	if p.depth >= p.maxDepth {
		return fmt.Errorf("%w (limit %d)", ErrTooDeep, p.maxDepth)
	}
	p.depth++
	pushed, err := p.consumeExpression()
	if err != nil {
		return err
	}
	if err := p.consumeRightParenthesis(); err != nil {
		return err
	}
	p.depth--

	if pushed {
		return p.solve()
	}
	return nil
}

// consumeExpression reports whether it pushed an operator.
func (p *Parser) consumeExpression() (bool, error) {
	unop, err := p.consumeUnop()
	if err != nil {
		return false, err
	}
	if unop {
		return true, p.consumeBaseExpression()
	}

	if err := p.consumeBaseExpression(); err != nil {
		return false, err
	}
	binop, err := p.consumeBinop()
	if err != nil || !binop {
		return false, err
	}
	return true, p.consumeBaseExpression()
}

func (p *Parser) solve() error {
	op, res, err := p.m.Solve()
	if err != nil {
		return err
	}
	p.log.Debug().
		Stringer("op", op).
		Int64("result", res).
		Int("operands", len(p.m.Operands)).
		Int("operators", len(p.m.Operators)).
		Msg("solve")
	return nil
}
