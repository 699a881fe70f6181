package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runREPL(t *testing.T, cfg *Config, input string) (*REPL, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	r := NewREPL(strings.NewReader(input), &out, &errOut, cfg)
	require.NoError(t, r.Run())
	return r, out.String(), errOut.String()
}

func TestREPLEvaluatesLines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = ColorNever
	cfg.Color.Apply()
	_, out, errOut := runREPL(t, cfg, "let x = 42;\nx + 8\n\"a\" + \"b\"\n")
	require.Empty(t, errOut)
	require.Equal(t, "> 42\n> 50\n> ab\n> \n", out)
}

func TestREPLReportsErrorsAndContinues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = ColorNever
	cfg.Color.Apply()
	_, out, errOut := runREPL(t, cfg, "y\n\"a\" - 1\nlet = 1\n1 + 1\n")
	require.Contains(t, errOut, "error: statement 1: undefined variable: y")
	require.Contains(t, errOut, "error: statement 1: invalid operation")
	require.Contains(t, errOut, "error: statement 1: parse error: expected identifier after let")
	require.Contains(t, out, "2\n")
}

func TestREPLCommands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = ColorNever
	cfg.Color.Apply()
	cfg.Prompt = "tsi> "
	input := strings.Join([]string{
		`let b = "two";`,
		"let a = 1;",
		":vars",
		":reset",
		":vars",
		":bogus",
		":quit",
		"let never = 1;",
	}, "\n")
	r, out, errOut := runREPL(t, cfg, input)
	require.Contains(t, out, "a = 1\nb = \"two\"\n")
	require.Contains(t, out, "environment cleared")
	require.Contains(t, errOut, "unknown command :bogus")
	require.Equal(t, 0, r.Session().Interpreter().Environment().Len())
	require.True(t, strings.HasPrefix(out, "tsi> "))
}

func TestREPLHistoryIsBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = ColorNever
	cfg.Color.Apply()
	cfg.HistorySize = 2
	r, out, _ := runREPL(t, cfg, "1\n2\n3\n:history\n")
	require.Equal(t, []string{"2", "3"}, r.History())
	require.Contains(t, out, "  1  2\n  2  3\n")
	// Listing history must not consume it.
	require.Equal(t, []string{"2", "3"}, r.History())
}

func TestREPLHistoryDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistorySize = 0
	r, _, _ := runREPL(t, cfg, "1\n2\n")
	require.Empty(t, r.History())
}

func TestREPLDebugTracesReachErrorStream(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Color = ColorNever
	cfg.Debug = true
	cfg.Color.Apply()
	_, out, errOut := runREPL(t, cfg, "let x = 1 + 2;\n")
	require.Equal(t, "> 3\n> \n", out)
	require.Contains(t, errOut, "statement 1: let x = (1 + 2);")
	require.Contains(t, errOut, "variables: {x=3}")
}
