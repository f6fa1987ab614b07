package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elaralang/elara/internal/compiler"
	"github.com/spf13/cobra"
)

const starterSource = `// %s
let greeting = "Hello World!"

let greet = :(name) => {
  print(greeting, name)
}

greet("%s")
`

var initDir string

// init: scaffold a new source file
var InitCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new Elara source file",
	Args:  cobra.ExactArgs(1),
	RunE:  initRun,
}

func initRun(cmd *cobra.Command, args []string) error {
	name := strings.TrimSuffix(args[0], compiler.SourceExt)
	outFile := filepath.Join(initDir, name+compiler.SourceExt)

	logf(cmd, "↪ scaffolding %q ...", outFile)

	if _, err := os.Stat(outFile); err == nil {
		return fmt.Errorf("%s already exists", outFile)
	}
	if err := os.MkdirAll(initDir, 0o755); err != nil {
		return err
	}
	src := fmt.Sprintf(starterSource, filepath.Base(outFile), name)
	if err := os.WriteFile(outFile, []byte(src), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✔︎ wrote %s\n", outFile)
	return nil
}

func init() {
	InitCmd.Flags().StringVarP(&initDir, "dir", "d", ".", "directory to create the source file in")
}
