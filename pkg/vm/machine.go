package vm

import (
	"fmt"
	"sync"
)

// StackDepth is the initial capacity of both stacks. The stacks grow past it.
const StackDepth = 32

// Machine holds the state of one evaluation: pending operands and pending
// operators. A Machine must not be shared between concurrent evaluations.
type Machine struct {
	Operands  []int64
	Operators []Op
}

// NewMachine returns an empty machine.
func NewMachine() *Machine {
	return &Machine{
		Operands:  make([]int64, 0, StackDepth),
		Operators: make([]Op, 0, StackDepth),
	}
}

// Reset clears the machine state for reuse (sync.Pool compliant).
func (m *Machine) Reset() {
	m.Operands = m.Operands[:0]
	m.Operators = m.Operators[:0]
}

// PushOperand adds a value to the operand stack.
func (m *Machine) PushOperand(v int64) {
	m.Operands = append(m.Operands, v)
}

// PopOperand removes and returns the top operand.
func (m *Machine) PopOperand() (int64, error) {
	n := len(m.Operands)
	if n == 0 {
		return 0, ErrStackUnderflow
	}
	v := m.Operands[n-1]
	m.Operands = m.Operands[:n-1]
	return v, nil
}

// PushOperator adds an operator awaiting its operands.
func (m *Machine) PushOperator(op Op) {
	m.Operators = append(m.Operators, op)
}

// PopOperator removes and returns the top operator.
func (m *Machine) PopOperator() (Op, error) {
	n := len(m.Operators)
	if n == 0 {
		return 0, ErrMissingOperator
	}
	op := m.Operators[n-1]
	m.Operators = m.Operators[:n-1]
	return op, nil
}

// Solve pops the top operator, applies it to the operands it needs and
// pushes the result. For binary operators the operand popped first is the
// right-hand side. It returns the applied operator and the result.
func (m *Machine) Solve() (Op, int64, error) {
	op, err := m.PopOperator()
	if err != nil {
		return 0, 0, err
	}

	var res int64
	switch op.Arity() {
	case Unary:
		x, err := m.PopOperand()
		if err != nil {
			return op, 0, err
		}
		if res, err = op.Unary(x); err != nil {
			return op, 0, err
		}
	case Binary:
		b, err := m.PopOperand()
		if err != nil {
			return op, 0, err
		}
		a, err := m.PopOperand()
		if err != nil {
			return op, 0, err
		}
		if res, err = op.Binary(a, b); err != nil {
			return op, 0, err
		}
	default:
		return op, 0, fmt.Errorf("%w: %v", ErrUnsupportedOperator, op)
	}

	m.PushOperand(res)
	return op, res, nil
}

// Result returns the single value left after a complete evaluation.
func (m *Machine) Result() (int64, error) {
	if len(m.Operators) != 0 {
		return 0, fmt.Errorf("%w: %d operator(s) left unapplied", ErrSyntax, len(m.Operators))
	}
	if len(m.Operands) != 1 {
		return 0, fmt.Errorf("%w: expected one result, have %d operand(s)", ErrSyntax, len(m.Operands))
	}
	return m.Operands[0], nil
}

var machinePool = sync.Pool{
	New: func() any { return NewMachine() },
}

// GetMachine returns a clean machine from the pool.
func GetMachine() *Machine {
	return machinePool.Get().(*Machine)
}

// PutMachine resets m and returns it to the pool.
func PutMachine(m *Machine) {
	m.Reset()
	machinePool.Put(m)
}
