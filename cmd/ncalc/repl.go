package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agenthands/ncalc/pkg/calc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate one expression per line from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		return repl(cmd.InOrStdin(), cmd.OutOrStdout(), interactive)
	},
}

// repl keeps going after evaluation errors; only read errors stop it.
func repl(in io.Reader, out io.Writer, interactive bool) error {
	sc := bufio.NewScanner(in)
	prompt := func() {
		if interactive {
			fmt.Fprint(out, color.CyanString("> "))
		}
	}

	prompt()
	failed := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			prompt()
			continue
		}

		res, err := calc.EvaluateString(line, evalOptions()...)
		if err != nil {
			failed++
			printError(out, err)
		} else {
			fmt.Fprintln(out, res)
		}
		prompt()
	}
	logger.Debug().Int("failed", failed).Msg("repl finished")
	return sc.Err()
}
