package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agenthands/ncalc/pkg/calc"
	"github.com/agenthands/ncalc/pkg/compiler/parser"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	maxDepth int
	noColor  bool

	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "ncalc",
	Short: "Evaluate integer arithmetic expressions",
	Long: `ncalc evaluates integer expressions built from literals, + - * /
and parentheses. Each parenthesized group holds at most one operator:

  ncalc eval "4 * (2 - 5)"
  ncalc eval "(1 + 2) + 3"
  ncalc eval -5

Flags go before the expression.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			level = zerolog.InfoLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Str("service", "ncalc").Logger().
			Level(level)
		if noColor {
			color.NoColor = true
		}
	},
}

func main() {
	rootCmd.SetArgs(expressionArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultLevel := "warn"
	if env := os.Getenv("NCALC_LOG_LEVEL"); env != "" {
		defaultLevel = env
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "log level (debug, info, warn, error); env NCALC_LOG_LEVEL")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum parenthesis nesting")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(evalCmd, tokensCmd, replCmd)
}

// expressionArgs inserts "--" ahead of the first expression argument of
// eval or tokens that starts with '-', so "-5" and "-(1+2)" are not read as
// shorthand flags.
func expressionArgs(args []string) []string {
	cmd := -1
	for i, a := range args {
		if a == "--" {
			return args
		}
		if cmd < 0 {
			if a == evalCmd.Name() || a == tokensCmd.Name() {
				cmd = i
			}
			continue
		}
		if isNegation(a) {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

func isNegation(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	switch c := a[1]; {
	case c >= '0' && c <= '9', c == '(', c == ' ', c == '\t':
		return true
	}
	return false
}

func evalOptions() []parser.Option {
	return []parser.Option{
		parser.WithLogger(logger),
		parser.WithMaxDepth(maxDepth),
	}
}

func printError(w io.Writer, err error) {
	if kind := calc.Kind(err); kind != "" {
		fmt.Fprintf(w, "%s %v\n", color.RedString("[%s]", kind), err)
		return
	}
	fmt.Fprintln(w, color.RedString("Error:"), err)
}
