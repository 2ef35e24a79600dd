package calc_test

import (
	"testing"

	"github.com/agenthands/ncalc/pkg/calc"
	"github.com/agenthands/ncalc/pkg/compiler/lexer"
)

func BenchmarkEvaluate(b *testing.B) {
	tokens, err := lexer.Tokenize([]byte("((12 * 3) - (-(4))) / ((7 + 1) * (2 - 1))"))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Evaluate(tokens); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := calc.EvaluateString("4 * (2 - 5)"); err != nil {
			b.Fatal(err)
		}
	}
}
