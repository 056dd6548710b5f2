// Package config holds the parameters of a simulation run. Values come from
// DefaultConfig, optionally a YAML file, then command line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config controls a simulation run.
type Config struct {
	Rule        int    `yaml:"rule"`
	Width       int    `yaml:"width"`
	Generations int    `yaml:"generations"`
	Threads     int    `yaml:"threads"`
	Seed        int64  `yaml:"seed"`
	SeedName    string `yaml:"seed_name"`
	Output      string `yaml:"output"`
	CellSize    int    `yaml:"cell_size"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:        30,
		Width:       101,
		Generations: 50,
		Threads:     0,
		Seed:        42,
		SeedName:    "center",
		CellSize:    4,
	}
}

// Load reads a YAML file over base and validates the result. Keys missing
// from the file keep their base value.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c := base
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first field outside its allowed range.
func (c Config) Validate() error {
	switch {
	case c.Rule < 0 || c.Rule > 255:
		return fmt.Errorf("%w: rule %d outside [0, 255]", ErrInvalidConfig, c.Rule)
	case c.Width < 3:
		return fmt.Errorf("%w: width %d, need at least 3", ErrInvalidConfig, c.Width)
	case c.Generations < 1:
		return fmt.Errorf("%w: generations %d, need at least 1", ErrInvalidConfig, c.Generations)
	case c.Threads < 0:
		return fmt.Errorf("%w: negative threads %d", ErrInvalidConfig, c.Threads)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d, need at least 1", ErrInvalidConfig, c.CellSize)
	case c.SeedName == "":
		return fmt.Errorf("%w: empty seed name", ErrInvalidConfig)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Rule, "rule", "r", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVarP(&c.Width, "width", "w", c.Width, "cells per row")
	fs.IntVarP(&c.Generations, "generations", "l", c.Generations, "generations to simulate, including the initial row")
	fs.IntVarP(&c.Threads, "threads", "t", c.Threads, "worker count (0 uses every CPU)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomized initial rows")
	fs.StringVar(&c.SeedName, "seed-name", c.SeedName, "initial row generator")
	fs.StringVarP(&c.Output, "output", "o", c.Output, "PNG output path (run) or directory (permutations)")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "pixels per cell in PNG output")
}

// Override returns base with every field whose flag was set on fs replaced
// by the value parsed into flags. flags must be the Config bound to fs.
func Override(base Config, fs *pflag.FlagSet, flags Config) Config {
	c := base
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "rule":
			c.Rule = flags.Rule
		case "width":
			c.Width = flags.Width
		case "generations":
			c.Generations = flags.Generations
		case "threads":
			c.Threads = flags.Threads
		case "seed":
			c.Seed = flags.Seed
		case "seed-name":
			c.SeedName = flags.SeedName
		case "output":
			c.Output = flags.Output
		case "cell-size":
			c.CellSize = flags.CellSize
		}
	})
	return c
}
