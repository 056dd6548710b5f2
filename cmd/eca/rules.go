package main

import (
	"fmt"
	"strconv"

	"eca/pkg/eca"

	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules NUMBER",
		Short: "Print the neighborhood table of a Wolfram rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("rule number: %w", err)
			}
			rule, err := eca.RuleNumber(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, rule)
			for code := 7; code >= 0; code-- {
				fmt.Fprintf(out, "%03b -> %d\n", code, rule.Lookup(uint8(code)))
			}
			return nil
		},
	}
}
