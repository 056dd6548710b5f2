package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/telemetry"
	"eca/pkg/eca"

	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	verbose    bool
	trace      bool

	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:          "eca",
		Short:        "Simulate elementary cellular automata",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			tcfg := telemetry.DefaultConfig()
			if opts.trace {
				tcfg.TraceExporter = "stdout"
				tcfg.Writer = stderr
			}
			shutdown, err := telemetry.Init(cmd.Context(), tcfg)
			if err != nil {
				return err
			}
			opts.shutdown = shutdown
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.shutdown == nil {
				return nil
			}
			return opts.shutdown(context.Background())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "YAML file with run parameters")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&opts.trace, "trace", false, "print OpenTelemetry spans to stderr")

	root.AddCommand(newRunCmd(opts), newPermutationsCmd(opts), newRulesCmd())
	return root
}

// resolve builds the effective configuration: the command defaults, then the
// config file, then flags set on cmd.
func (o *globalOptions) resolve(cmd *cobra.Command, defaults, flags config.Config) (config.Config, error) {
	base := defaults
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath, defaults)
		if err != nil {
			return config.Config{}, err
		}
		base = loaded
	}
	cfg := config.Override(base, cmd.Flags(), flags)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	o.logger.Debug("resolved config",
		slog.Int("rule", cfg.Rule),
		slog.Int("width", cfg.Width),
		slog.Int("generations", cfg.Generations),
		slog.Int("threads", cfg.Threads),
		slog.String("seed_name", cfg.SeedName),
		slog.String("config_file", o.configPath),
	)
	return cfg, nil
}

// initialRow looks up the named seed generator.
func initialRow(cfg config.Config) ([]uint8, error) {
	seed, ok := core.Seeds()[cfg.SeedName]
	if !ok {
		return nil, fmt.Errorf("unknown seed %q (have %v)", cfg.SeedName, core.SeedNames())
	}
	return seed(cfg.Width, cfg.Seed), nil
}

func ruleFor(cfg config.Config) (eca.Rule, error) {
	return eca.RuleNumber(cfg.Rule)
}
