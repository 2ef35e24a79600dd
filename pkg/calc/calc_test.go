package calc_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/agenthands/ncalc/pkg/calc"
	"github.com/agenthands/ncalc/pkg/compiler/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seq builds a token sequence from short spellings: digits become integer
// tokens, everything else a punctuation token.
func seq(parts ...string) *lexer.Sequence {
	var src []byte
	var toks []lexer.Token
	for _, part := range parts {
		kind := lexer.KindInteger
		switch part {
		case "+":
			kind = lexer.KindPlus
		case "-":
			kind = lexer.KindMinus
		case "*":
			kind = lexer.KindStar
		case "/":
			kind = lexer.KindSlash
		case "(":
			kind = lexer.KindLParen
		case ")":
			kind = lexer.KindRParen
		}
		toks = append(toks, lexer.Token{Kind: kind, Offset: uint32(len(src)), Length: uint32(len(part)), Line: 1})
		src = append(src, part...)
	}
	return lexer.NewSequence(src, toks)
}

func TestEvaluateScenarios(t *testing.T) {
	tests := []struct {
		name   string
		tokens *lexer.Sequence
		want   int64
		err    error
	}{
		{"Literal", seq("3"), 3, nil},
		{"Parenthesized Sum", seq("(", "1", "+", "2", ")"), 3, nil},
		{"Unary Minus", seq("-", "5"), -5, nil},
		{"Nested Solve", seq("4", "*", "(", "2", "-", "5", ")"), -12, nil},
		{"Division By Zero", seq("7", "/", "0"), 0, calc.ErrDivisionByZero},
		{"Missing Closing Parenthesis", seq("(", "1", "+", "2"), 0, calc.ErrSyntax},
		{"Unbalanced", seq("(", "1"), 0, calc.ErrSyntax},
		{"Empty", seq(), 0, calc.ErrSyntax},
		{"Malformed Literal", seq("1x"), 0, calc.ErrMalformedLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Evaluate(tt.tokens)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateBinaryOperators(t *testing.T) {
	values := []int64{-17, -3, -1, 0, 1, 2, 5, 12, 1000}
	ops := map[string]func(a, b int64) int64{
		"+": func(a, b int64) int64 { return a + b },
		"-": func(a, b int64) int64 { return a - b },
		"*": func(a, b int64) int64 { return a * b },
		"/": func(a, b int64) int64 { return a / b },
	}

	for sym, fn := range ops {
		for _, a := range values {
			for _, b := range values {
				if sym == "/" && b == 0 {
					continue
				}
				// Negative operands need their own group.
				src := fmt.Sprintf("(%s) %s (%s)", signed(a), sym, signed(b))
				got, err := calc.EvaluateString(src)
				require.NoError(t, err, src)
				assert.Equal(t, fn(a, b), got, src)
			}
		}
	}
}

func signed(v int64) string {
	if v < 0 {
		return fmt.Sprintf("-%d", -v)
	}
	return fmt.Sprintf("%d", v)
}

func TestEvaluateUnaryAndGrouping(t *testing.T) {
	for _, a := range []int64{0, 1, 42, 9223372036854775807} {
		lit := fmt.Sprintf("%d", a)

		got, err := calc.Evaluate(seq("+", lit))
		require.NoError(t, err)
		assert.Equal(t, a, got)

		got, err = calc.Evaluate(seq("-", lit))
		require.NoError(t, err)
		assert.Equal(t, -a, got)

		plain, err := calc.Evaluate(seq(lit))
		require.NoError(t, err)
		grouped, err := calc.Evaluate(seq("(", lit, ")"))
		require.NoError(t, err)
		assert.Equal(t, plain, grouped)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, a := range []string{"0", "1", "7", "123456"} {
		_, err := calc.Evaluate(seq(a, "/", "0"))
		assert.ErrorIs(t, err, calc.ErrDivisionByZero, a)
	}
}

func TestEvaluateStringLexicalError(t *testing.T) {
	_, err := calc.EvaluateString("2 ^ 3")
	require.ErrorIs(t, err, calc.ErrSyntax)
	require.ErrorIs(t, err, lexer.ErrUnexpectedCharacter)
}

func TestEvaluateConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int64) {
			defer wg.Done()
			src := fmt.Sprintf("(%d * (%d + 1)) - (%d / 1)", i, i, i)
			for j := 0; j < 100; j++ {
				got, err := calc.EvaluateString(src)
				if err != nil {
					errs <- err
					return
				}
				if want := i*(i+1) - i; got != want {
					errs <- fmt.Errorf("%s = %d, want %d", src, got, want)
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestKind(t *testing.T) {
	_, err := calc.EvaluateString("(1")
	assert.Equal(t, "syntax", calc.Kind(err))

	_, err = calc.EvaluateString("1 / 0")
	assert.Equal(t, "division by zero", calc.Kind(err))

	_, err = calc.EvaluateString("99999999999999999999")
	assert.Equal(t, "malformed literal", calc.Kind(err))

	assert.Equal(t, "", calc.Kind(errors.New("other")))
	assert.Equal(t, "", calc.Kind(nil))
}
