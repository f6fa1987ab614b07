package cmd

import (
	"fmt"

	"github.com/elaralang/elara/internal/compiler"
	"github.com/elaralang/elara/internal/compiler/ast"
	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseStrict bool
)

// parse: build and print the AST
var ParseCmd = &cobra.Command{
	Use:   "parse <source.el>",
	Short: "Parse an Elara source file and print its AST",
	Args:  cobra.ExactArgs(1),
	RunE:  parseRun,
}

func parseRun(cmd *cobra.Command, args []string) error {
	src := args[0]

	render, err := renderer(parseFormat)
	if err != nil {
		return err
	}

	logf(cmd, "↪ parsing %q ...", src)

	res, err := compiler.ParseFile(src)
	if err != nil {
		return err
	}
	printWarnings(cmd, res.Warnings)
	if parseStrict && len(res.Warnings) > 0 {
		return fmt.Errorf("%s: %d warning(s) in strict mode", src, len(res.Warnings))
	}

	fmt.Fprint(cmd.OutOrStdout(), render(res.Root))
	logf(cmd, "✔︎ %d top-level node(s)", len(res.Root.Children))
	return nil
}

// renderer maps --format onto an AST rendering. "source" re-prints the
// program from the nodes' String methods.
func renderer(format string) (func(*ast.Root) string, error) {
	if format == "source" {
		return (*ast.Root).String, nil
	}
	f, err := ast.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(root *ast.Root) string {
		out := ast.Print(root, f)
		if f == ast.FormatSExpr {
			out += "\n"
		}
		return out
	}, nil
}

func init() {
	ParseCmd.Flags().StringVarP(&parseFormat, "format", "f", "tree", "output format: tree, sexpr or source")
	ParseCmd.Flags().BoolVar(&parseStrict, "strict", false, "fail when the parser skipped any input")
}
