package main

import (
	"fmt"
	"log/slog"

	"eca/internal/config"
	"eca/internal/render"
	"eca/pkg/eca"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	defaults := config.DefaultConfig()
	flags := defaults
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one automaton and print or rasterize its history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, defaults, flags)
			if err != nil {
				return err
			}
			rule, err := ruleFor(cfg)
			if err != nil {
				return err
			}
			row, err := initialRow(cfg)
			if err != nil {
				return err
			}

			a := eca.New(rule, row)
			a.Simulate(cfg.Generations)
			history, err := a.History()
			if err != nil {
				return err
			}
			on, _ := a.CountOn()
			off, _ := a.CountOff()
			opts.logger.Info("simulated",
				slog.String("rule", rule.String()),
				slog.Int("width", a.Width()),
				slog.Int("generations", a.Generations()),
				slog.Int("on", on),
				slog.Int("off", off),
			)

			if cfg.Output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), render.Text(history, '█', ' '))
				return err
			}
			style := render.DefaultStyle()
			style.CellSize = cfg.CellSize
			if err := render.SavePNG(cfg.Output, render.Rasterize(history, style)); err != nil {
				return err
			}
			opts.logger.Info("wrote image", slog.String("path", cfg.Output))
			return nil
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}
