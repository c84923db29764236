package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	dataCmdConfig
	trainOutput   string
	testOutput    string
	trainFraction float64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set of samples into a training and a test set",
		Long:  `Split a set of samples at random into a training set and a test set, the same way for the same seed.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			m, err := config.matrix(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			train, test, err := m.Split(config.rand(), config.trainFraction)
			if err != nil {
				fmt.Fprintf(os.Stderr, "splitting samples: %v\n", err)
				os.Exit(3)
			}
			getLogger(ctx).Debug("samples split", "train", train.Len(), "test", test.Len(), "seed", config.Seed)
			if err := config.writeMatrix(ctx, config.trainOutput, train); err != nil {
				fmt.Fprintf(os.Stderr, "writing training set: %v\n", err)
				os.Exit(4)
			}
			if err := config.writeMatrix(ctx, config.testOutput, test); err != nil {
				fmt.Fprintf(os.Stderr, "writing test set: %v\n", err)
				os.Exit(4)
			}
		},
	}
	config.addDataFlags(cmd, "split")
	cmd.Flags().StringVar(&(config.trainOutput), "train", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL the training set is written to (required)")
	cmd.Flags().StringVar(&(config.testOutput), "test", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL the test set is written to (required)")
	cmd.Flags().Float64Var(&(config.trainFraction), "train-fraction", 0.7, "fraction of the samples going to the training set")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if scc.trainOutput == "" {
		return fmt.Errorf("required train flag was not set")
	}
	if scc.testOutput == "" {
		return fmt.Errorf("required test flag was not set")
	}
	if scc.trainOutput == scc.testOutput {
		return fmt.Errorf("train and test outputs must differ")
	}
	if scc.trainFraction <= 0 || scc.trainFraction >= 1 {
		return fmt.Errorf("train fraction must be between 0 and 1, got %v", scc.trainFraction)
	}
	return scc.validateData()
}
