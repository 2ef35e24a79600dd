package vm

import "fmt"

// Arity is the number of operands an operator consumes.
type Arity uint8

const (
	Unary  Arity = 1
	Binary Arity = 2
)

func (a Arity) String() string {
	switch a {
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	}
	return fmt.Sprintf("arity(%d)", uint8(a))
}

// Op is one of the closed set of operator variants. The zero value is not a
// valid operator.
type Op uint8

const (
	OP_POS Op = iota + 1 // unary +
	OP_NEG               // unary -
	OP_ADD
	OP_SUB
	OP_MUL
	OP_DIV
)

func (op Op) String() string {
	switch op {
	case OP_POS:
		return "POS"
	case OP_NEG:
		return "NEG"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	case OP_MUL:
		return "MUL"
	case OP_DIV:
		return "DIV"
	}
	return fmt.Sprintf("OP(%d)", uint8(op))
}

// Arity returns how many operands op pops. It is zero for invalid operators.
func (op Op) Arity() Arity {
	switch op {
	case OP_POS, OP_NEG:
		return Unary
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		return Binary
	}
	return 0
}

// Unary applies a unary operator to x.
func (op Op) Unary(x int64) (int64, error) {
	switch op {
	case OP_POS:
		return x, nil
	case OP_NEG:
		return -x, nil
	}
	return 0, fmt.Errorf("%w: %v is not unary", ErrUnsupportedOperator, op)
}

// Binary applies a binary operator to a and b. Division truncates toward zero.
func (op Op) Binary(a, b int64) (int64, error) {
	switch op {
	case OP_ADD:
		return a + b, nil
	case OP_SUB:
		return a - b, nil
	case OP_MUL:
		return a * b, nil
	case OP_DIV:
		if b == 0 {
			return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %v is not binary", ErrUnsupportedOperator, op)
}
