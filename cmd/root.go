package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "elara",
	Short: "Elara CLI — lexer, parser and AST inspector",
	Long: `Elara is the front end for the Elara scripting language.

Commands:
  init    Scaffold a new Elara source file
  tokens  Print the token stream of a (.el) source file
  parse   Parse a (.el) source file and print its AST
  repl    Parse lines interactively and print their ASTs
`,
	SilenceUsage: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

// logf prints progress lines when --verbose is set.
func logf(cmd *cobra.Command, format string, args ...any) {
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

// printWarnings reports non-fatal parser diagnostics on stderr.
func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), w)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print progress information")

	rootCmd.AddCommand(InitCmd, TokensCmd, ParseCmd, ReplCmd)
}
