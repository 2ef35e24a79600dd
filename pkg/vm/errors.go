package vm

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the evaluator matches exactly one
// of these three with errors.Is.
var (
	ErrSyntax           = errors.New("syntax error")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrMalformedLiteral = errors.New("malformed literal")
)

// Syntax errors raised by the machine itself.
var (
	ErrUnsupportedOperator = fmt.Errorf("%w: unsupported operator", ErrSyntax)
	ErrMissingOperator     = fmt.Errorf("%w: missing operator", ErrSyntax)
	ErrStackUnderflow      = fmt.Errorf("%w: missing operand", ErrSyntax)
)
