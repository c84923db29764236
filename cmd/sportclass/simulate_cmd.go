package main

import (
	"fmt"
	"os"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset/simulate"
	"github.com/spf13/cobra"
)

type simulateCmdConfig struct {
	*rootCmdConfig
	output string
	rows   int
	params simulate.Params
}

func simulateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &simulateCmdConfig{rootCmdConfig: rootConfig, params: simulate.DefaultParams()}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate a set of simulated athletes",
		Long: `Generate a set of athletes whose race times depend on their visual acuity (VA)
and contrast sensitivity (CS), the same way for the same seed`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			m, err := simulate.Athletes(config.rand(), config.rows, config.params)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			getLogger(ctx).Debug("athletes simulated", "rows", m.Len(), "seed", config.Seed)
			if err := config.writeMatrix(ctx, config.output, m); err != nil {
				fmt.Fprintf(os.Stderr, "writing athletes: %v\n", err)
				os.Exit(3)
			}
		},
	}
	p := &config.params
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL the athletes are written to (defaults to STDOUT, as CSV)")
	cmd.Flags().IntVarP(&(config.rows), "rows", "n", 100, "number of athletes")
	cmd.Flags().Float64Var(&(p.VAThreshold), "va-threshold", p.VAThreshold, "VA above which race times get slower")
	cmd.Flags().Float64Var(&(p.VAPenalty), "va-penalty", p.VAPenalty, "seconds added to the race time above the VA threshold")
	cmd.Flags().Float64Var(&(p.CSThreshold), "cs-threshold", p.CSThreshold, "CS below which race times get slower")
	cmd.Flags().Float64Var(&(p.CSPenalty), "cs-penalty", p.CSPenalty, "seconds added to the race time below the CS threshold")
	cmd.Flags().Float64Var(&(p.Noise), "noise", p.Noise, "standard deviation of the race time noise")
	return cmd
}

func (scc *simulateCmdConfig) Validate() error {
	if scc.rows < 1 {
		return fmt.Errorf("at least one athlete must be simulated, got %d", scc.rows)
	}
	return nil
}
