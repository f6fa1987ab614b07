package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseCommand(t *testing.T) {
	path := writeSource(t, "main.el", "let x = 1\nprint(x)\n")

	out, _, err := run(t, "parse", "--format", "sexpr", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := "(Root (Declaration x (Number 1)) (FunctionCall print (Parameters (Identifier x))))\n"
	if out != want {
		t.Errorf("output wrong.\nexpected=%q\ngot=%q", want, out)
	}

	out, _, err = run(t, "parse", "--format", "source", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if out != "let x = 1\nprint(x)\n" {
		t.Errorf("source output wrong, got=%q", out)
	}
}

func TestParseCommandWarningsAndStrict(t *testing.T) {
	path := writeSource(t, "warn.el", "a b\n")

	_, stderr, err := run(t, "parse", "--format", "tree", "--strict=false", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(stderr, "Syntax Warning") {
		t.Errorf("expected warning on stderr, got=%q", stderr)
	}

	_, _, err = run(t, "parse", "--strict", path)
	if err == nil || !strings.Contains(err.Error(), "strict mode") {
		t.Errorf("expected strict mode failure, got=%v", err)
	}
	run(t, "parse", "--strict=false", path)
}

func TestParseCommandSyntaxError(t *testing.T) {
	path := writeSource(t, "bad.el", "f(1, 2 3)\n")
	_, _, err := run(t, "parse", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid separator in function call") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestTokensCommand(t *testing.T) {
	path := writeSource(t, "toks.el", "let x = 1")
	out, _, err := run(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 tokens, got %d:\n%s", len(lines), out)
	}
	if lines[0] != `LET("let") 1:1` {
		t.Errorf("first token wrong, got=%q", lines[0])
	}
}

func TestInitCommandScaffoldsParsableSource(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := run(t, "init", "--dir", dir, "hello"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	path := filepath.Join(dir, "hello.el")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}

	if _, _, err := run(t, "init", "--dir", dir, "hello"); err == nil {
		t.Errorf("expected init to refuse overwriting %s", path)
	}

	_, stderr, err := run(t, "parse", "--strict", path)
	if err != nil {
		t.Fatalf("scaffolded source should parse cleanly: %v\n%s", err, stderr)
	}
}

func TestIncomplete(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"let f = :(x) => {", true},
		{"print(1,", true},
		{"let f = :(x) => {\n  x\n}", false},
		{"f(1, 2 3)", false},
		{"x", false},
	}
	for _, tt := range tests {
		if got := incomplete(tt.src); got != tt.want {
			t.Errorf("incomplete(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestHistoryPath(t *testing.T) {
	t.Setenv("ELARA_HISTORY", "/tmp/elara-env-history")
	if got := historyPath(); got != "/tmp/elara-env-history" {
		t.Errorf("historyPath() = %q, want env override", got)
	}

	replHistory = "/tmp/elara-flag-history"
	defer func() { replHistory = "" }()
	if got := historyPath(); got != "/tmp/elara-flag-history" {
		t.Errorf("historyPath() = %q, want flag override", got)
	}
}
