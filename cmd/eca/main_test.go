package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"eca/pkg/eca"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunPrintsHistory(t *testing.T) {
	out, logs, err := execute(t, "run", "--rule", "90", "--width", "7", "--generations", "3")
	require.NoError(t, err)
	require.Equal(t, "   █   \n  █ █  \n █   █ \n", out)
	require.Contains(t, logs, "on=5")
	require.Contains(t, logs, "off=16")
}

func TestRunWritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule30.png")
	out, _, err := execute(t, "run", "-r", "30", "-w", "21", "-l", "10", "-o", path, "--cell-size", "2")
	require.NoError(t, err)
	require.Empty(t, out)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRunRandomSeedIsDeterministic(t *testing.T) {
	args := []string{"run", "--width", "32", "--generations", "8", "--seed-name", "random", "--seed", "3"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, args...)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRunRejectsBadInput(t *testing.T) {
	_, _, err := execute(t, "run", "--rule", "256")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--width", "2")
	require.Error(t, err)

	_, _, err = execute(t, "run", "--seed-name", "sideways")
	require.ErrorContains(t, err, "unknown seed")
}

func TestRunUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: 90\nwidth: 7\ngenerations: 2\n"), 0o644))

	out, _, err := execute(t, "--config", path, "run")
	require.NoError(t, err)
	require.Equal(t, "   █   \n  █ █  \n", out)

	out, _, err = execute(t, "--config", path, "run", "--generations", "1")
	require.NoError(t, err)
	require.Equal(t, "   █   \n", out)
}

func TestRulesTable(t *testing.T) {
	out, _, err := execute(t, "rules", "30")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"rule 30",
		"111 -> 0",
		"110 -> 0",
		"101 -> 0",
		"100 -> 1",
		"011 -> 1",
		"010 -> 1",
		"001 -> 1",
		"000 -> 0",
	}, "\n")+"\n", out)

	_, _, err = execute(t, "rules", "x")
	require.Error(t, err)
	_, _, err = execute(t, "rules", "999")
	require.Error(t, err)
}

func TestPermutationsSummary(t *testing.T) {
	out, _, err := execute(t, "permutations", "--rule", "30", "--width", "3", "--generations", "4", "--threads", "4")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "automata: 8\n"), out)
}

func TestPermutationsWritesImages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "perms")
	_, _, err := execute(t, "permutations", "-w", "4", "-l", "3", "-o", dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 16)
	_, err = os.Stat(filepath.Join(dir, "rule_30_0110.png"))
	require.NoError(t, err)
}

func TestPermutationsWidthLimit(t *testing.T) {
	_, _, err := execute(t, "permutations", "--width", "40")
	require.ErrorContains(t, err, "exceeds")
}

func TestPermutationsTrace(t *testing.T) {
	_, logs, err := execute(t, "--trace", "permutations", "-w", "3", "-l", "2")
	require.NoError(t, err)
	require.Contains(t, logs, "eca.SimulateAll")
}

func TestImageName(t *testing.T) {
	require.Equal(t, "rule_110_0101.png", imageName(eca.MustRuleNumber(110), []uint8{0, 1, 0, 1}))
}
