package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	mutations := map[string]func(*Config){
		"rule":        func(c *Config) { c.Rule = -1 },
		"width":       func(c *Config) { c.Width = 2 },
		"generations": func(c *Config) { c.Generations = 0 },
		"threads":     func(c *Config) { c.Threads = -2 },
		"cell size":   func(c *Config) { c.CellSize = 0 },
		"seed name":   func(c *Config) { c.SeedName = "" },
	}
	for name, mutate := range mutations {
		c := DefaultConfig()
		mutate(&c)
		require.ErrorIsf(t, c.Validate(), ErrInvalidConfig, "mutation %s", name)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rule: 110\nwidth: 64\nseed_name: random\n"), 0o644))

	c, err := Load(path, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 110, c.Rule)
	require.Equal(t, 64, c.Width)
	require.Equal(t, "random", c.SeedName)
	require.Equal(t, DefaultConfig().Generations, c.Generations)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rule: 300\n"), 0o644))
	_, err := Load(bad, DefaultConfig())
	require.ErrorIs(t, err, ErrInvalidConfig)

	garbled := filepath.Join(dir, "garbled.yaml")
	require.NoError(t, os.WriteFile(garbled, []byte("rule: [\n"), 0o644))
	_, err = Load(garbled, DefaultConfig())
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"), DefaultConfig())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFlagsOverrideFile(t *testing.T) {
	file := DefaultConfig()
	file.Rule = 110
	file.Width = 64

	scratch := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	scratch.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--width", "9", "-l", "4"}))

	c := Override(file, fs, scratch)
	require.Equal(t, 110, c.Rule)
	require.Equal(t, 9, c.Width)
	require.Equal(t, 4, c.Generations)
	require.Equal(t, file.SeedName, c.SeedName)
}

func TestOverrideKeepsInvalidFlagForValidate(t *testing.T) {
	scratch := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	scratch.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--rule=300", "--seed-name", "random", "-o", "x.png", "--cell-size", "2", "-t", "3", "--seed", "5"}))

	c := Override(DefaultConfig(), fs, scratch)
	require.Equal(t, 300, c.Rule)
	require.Equal(t, "random", c.SeedName)
	require.Equal(t, "x.png", c.Output)
	require.Equal(t, 2, c.CellSize)
	require.Equal(t, 3, c.Threads)
	require.Equal(t, int64(5), c.Seed)
	require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
}
