package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"eca/internal/config"
	"eca/internal/render"
	"eca/pkg/eca"

	"github.com/spf13/cobra"
)

// maxPermutationWidth keeps 2^width histories within reach of a workstation.
const maxPermutationWidth = 24

func newPermutationsCmd(opts *globalOptions) *cobra.Command {
	defaults := config.DefaultConfig()
	defaults.Width = 10
	defaults.Generations = 100
	flags := defaults
	cmd := &cobra.Command{
		Use:   "permutations",
		Short: "Simulate every binary input of a width in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, defaults, flags)
			if err != nil {
				return err
			}
			if cfg.Width > maxPermutationWidth {
				return fmt.Errorf("width %d exceeds %d for permutations", cfg.Width, maxPermutationWidth)
			}
			rule, err := ruleFor(cfg)
			if err != nil {
				return err
			}

			var simOpts []eca.Option
			if cfg.Threads > 0 {
				simOpts = append(simOpts, eca.WithThreads(cfg.Threads))
			}
			if cfg.Output != "" {
				style := render.DefaultStyle()
				style.CellSize = cfg.CellSize
				simOpts = append(simOpts, eca.WithObserver(func(a *eca.Automaton) error {
					h, err := a.History()
					if err != nil {
						return err
					}
					return render.SavePNG(filepath.Join(cfg.Output, imageName(rule, a.Input())), render.Rasterize(h, style))
				}))
			}

			start := time.Now()
			results, err := eca.SimulateAll(cmd.Context(), rule, cfg.Width, cfg.Generations, simOpts...)
			if err != nil {
				return err
			}
			opts.logger.Info("simulated permutations",
				slog.String("rule", rule.String()),
				slog.Int("width", cfg.Width),
				slog.Int("generations", cfg.Generations),
				slog.Int("automata", len(results)),
				slog.Duration("elapsed", time.Since(start)),
			)
			return writeSummary(cmd, results)
		},
	}
	flags.Bind(cmd.Flags())
	return cmd
}

// imageName is the file name for one automaton: rule and input bits.
func imageName(rule eca.Rule, input []uint8) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rule_%d_", rule.Number())
	for _, c := range input {
		b.WriteByte('0' + c)
	}
	b.WriteString(".png")
	return b.String()
}

// writeSummary prints the on-cell count distribution, sorted by count.
func writeSummary(cmd *cobra.Command, results []*eca.Automaton) error {
	hist := map[int]int{}
	for _, a := range results {
		on, err := a.CountOn()
		if err != nil {
			return err
		}
		hist[on]++
	}
	counts := make([]int, 0, len(hist))
	for on := range hist {
		counts = append(counts, on)
	}
	sort.Ints(counts)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "automata: %d\n", len(results))
	for _, on := range counts {
		fmt.Fprintf(out, "on=%d\tautomata=%d\n", on, hist[on])
	}
	return nil
}
