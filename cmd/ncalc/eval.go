package main

import (
	"fmt"
	"strings"

	"github.com/agenthands/ncalc/pkg/calc"
	"github.com/agenthands/ncalc/pkg/compiler/lexer"
	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate an expression and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := strings.Join(args, " ")
		res, err := calc.EvaluateString(src, evalOptions()...)
		if err != nil {
			logger.Debug().Str("expr", src).Err(err).Msg("evaluation failed")
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <expression>...",
	Short: "Print the token sequence of an expression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := lexer.Tokenize([]byte(strings.Join(args, " ")))
		if err != nil {
			return err
		}
		p := repr.New(cmd.OutOrStdout(), repr.Indent("  "), repr.OmitEmpty(false))
		for _, tok := range seq.Tokens {
			p.Println(tokenView{
				Kind:    tok.Kind.String(),
				Literal: seq.Literal(tok),
				Offset:  tok.Offset,
				Line:    tok.Line,
			})
		}
		return nil
	},
}

type tokenView struct {
	Kind    string
	Literal string
	Offset  uint32
	Line    uint32
}
