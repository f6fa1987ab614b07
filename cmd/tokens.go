package cmd

import (
	"fmt"

	"github.com/elaralang/elara/internal/compiler"
	"github.com/spf13/cobra"
)

// tokens: dump the lexer output
var TokensCmd = &cobra.Command{
	Use:   "tokens <source.el>",
	Short: "Print the token stream of an Elara source file",
	Args:  cobra.ExactArgs(1),
	RunE:  tokensRun,
}

func tokensRun(cmd *cobra.Command, args []string) error {
	src := args[0]
	logf(cmd, "↪ lexing %q ...", src)

	toks, err := compiler.TokenizeFile(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tok := range toks {
		fmt.Fprintln(out, tok)
	}
	logf(cmd, "✔︎ %d tokens", len(toks))
	return nil
}
