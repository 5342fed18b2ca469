package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/mdpeval/config"
	"github.com/samuelfneumann/mdpeval/experiment/tracker"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.yaml")
	instance := filepath.Join(dir, "instance.gob")
	returns := filepath.Join(dir, "returns.bin")

	c := config.Default()
	c.NStates, c.NActions, c.NOutcomes, c.Seed = 4, 3, 2, 7
	require.NoError(t, c.Save(cfgPath))

	_, err := execute("generate", "--config", cfgPath, "--out", instance)
	require.NoError(t, err)

	out, err := execute("evaluate", "--config", cfgPath, "--in", instance,
		"--workers", "2", "--exact")
	require.NoError(t, err)
	for _, want := range []string{"V:", "Q:", "Exact V:", "Max error:"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, c.NStates, strings.Count(out, "greedy"))

	out, err = execute("simulate", "--config", cfgPath, "--in", instance,
		"--episodes", "50", "--cutoff", "10", "--returns", returns)
	require.NoError(t, err)
	assert.Contains(t, out, "Monte-Carlo V:")
	assert.Contains(t, out, "Max error:")

	data, err := tracker.LoadStartReturns(returns)
	require.NoError(t, err)
	total := 0
	for _, r := range data {
		total += len(r)
	}
	assert.Equal(t, 50, total)
}

func TestEvaluateErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := execute("evaluate", "--config", "", "--in",
		filepath.Join(dir, "missing.gob"))
	assert.Error(t, err)

	_, err = execute("evaluate", "--config", "", "--in",
		filepath.Join(dir, "missing.gob"), "--discount", "1.5")
	assert.Error(t, err)
}
