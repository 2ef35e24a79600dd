// Package calc evaluates integer arithmetic over + - * / and parentheses.
//
// Each parenthesized group holds at most one operator:
//
//	calc.EvaluateString("4 * (2 - 5)")   // -12
//	calc.EvaluateString("(1 + 2) + 3")   // 6
//	calc.EvaluateString("1 + 2 + 3")     // ErrSyntax
package calc

import (
	"errors"
	"fmt"

	"github.com/agenthands/ncalc/pkg/compiler/lexer"
	"github.com/agenthands/ncalc/pkg/compiler/parser"
	"github.com/agenthands/ncalc/pkg/vm"
)

var (
	ErrSyntax           = vm.ErrSyntax
	ErrDivisionByZero   = vm.ErrDivisionByZero
	ErrMalformedLiteral = vm.ErrMalformedLiteral
)

// Evaluate parses and evaluates tokens. It is safe for concurrent use.
func Evaluate(tokens parser.TokenSource, opts ...parser.Option) (int64, error) {
	return parser.NewParser(tokens, opts...).Parse()
}

// EvaluateString tokenizes src and evaluates it. Lexical errors are
// reported as ErrSyntax.
func EvaluateString(src string, opts ...parser.Option) (int64, error) {
	seq, err := lexer.Tokenize([]byte(src))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return Evaluate(seq, opts...)
}

// Kind names the error kind of err, or "" if err is not an evaluation error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return "division by zero"
	case errors.Is(err, ErrMalformedLiteral):
		return "malformed literal"
	case errors.Is(err, ErrSyntax):
		return "syntax"
	}
	return ""
}
