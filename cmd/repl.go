package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/elaralang/elara/internal/compiler"
	"github.com/elaralang/elara/internal/compiler/parser"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	promptMain  = "elara> "
	promptCont  = "  ...> "
	historyFile = ".elara_history"
)

var (
	replFormat  string
	replHistory string
)

// repl: parse input interactively
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse lines interactively and print their ASTs",
	Args:  cobra.NoArgs,
	RunE:  replRun,
}

func replRun(cmd *cobra.Command, args []string) error {
	render, err := renderer(replFormat)
	if err != nil {
		return err
	}

	histPath := historyPath()
	logf(cmd, "↪ history in %s", histPath)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Elara parser REPL. Type :quit to exit.")

	for {
		src, ok := readUntilComplete(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}

		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case trimmed == ":quit":
			return nil
		case strings.HasPrefix(trimmed, ":"):
			fmt.Fprintln(out, "unknown command. Type :quit to exit.")
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		res, err := compiler.ParseSource(src)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), compiler.WrapErrorWithSource(err, src))
			continue
		}
		printWarnings(cmd, res.Warnings)
		fmt.Fprint(out, render(res.Root))
	}
}

// readUntilComplete keeps prompting while the buffered input only fails
// because it ended too early, e.g. inside an open '{' or '('.
func readUntilComplete(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if incomplete(src) {
			continue
		}
		return src, true
	}
}

func incomplete(src string) bool {
	_, err := compiler.ParseSource(src)
	return errors.Is(err, parser.ErrUnexpectedEndOfInput)
}

// historyPath honours --history, then ELARA_HISTORY, then ~/.elara_history.
func historyPath() string {
	if replHistory != "" {
		return replHistory
	}
	if p := os.Getenv("ELARA_HISTORY"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

func init() {
	ReplCmd.Flags().StringVarP(&replFormat, "format", "f", "sexpr", "output format: tree, sexpr or source")
	ReplCmd.Flags().StringVar(&replHistory, "history", "", "history file (default ~/.elara_history)")
}
