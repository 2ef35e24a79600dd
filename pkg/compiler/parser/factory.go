package parser

import (
	"fmt"

	"github.com/agenthands/ncalc/pkg/compiler/lexer"
	"github.com/agenthands/ncalc/pkg/vm"
)

// BuildOperator maps a token kind used with the given arity to its operator.
// Only + and - have unary forms.
func BuildOperator(kind lexer.Kind, arity vm.Arity) (vm.Op, error) {
	switch arity {
	case vm.Unary:
		switch kind {
		case lexer.KindPlus:
			return vm.OP_POS, nil
		case lexer.KindMinus:
			return vm.OP_NEG, nil
		}
	case vm.Binary:
		switch kind {
		case lexer.KindPlus:
			return vm.OP_ADD, nil
		case lexer.KindMinus:
			return vm.OP_SUB, nil
		case lexer.KindStar:
			return vm.OP_MUL, nil
		case lexer.KindSlash:
			return vm.OP_DIV, nil
		}
	}
	return 0, fmt.Errorf("%w: %v %v", vm.ErrUnsupportedOperator, arity, kind)
}

func isUnop(k lexer.Kind) bool {
	return k == lexer.KindPlus || k == lexer.KindMinus
}

func isBinop(k lexer.Kind) bool {
	return k == lexer.KindPlus || k == lexer.KindMinus || k == lexer.KindStar || k == lexer.KindSlash
}
