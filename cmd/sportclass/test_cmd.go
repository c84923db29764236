package main

import (
	"fmt"
	"os"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	dataCmdConfig
	treeInput string
	byClass   bool
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test set of samples, reporting the root mean squared and mean absolute errors of its predictions.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			t, err := config.loadTree(ctx, config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			m, err := config.matrix(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			getLogger(ctx).Debug("testing tree", "size", t.Size(), "samples", m.Len())
			ev, err := decisiontree.Evaluate(t, m)
			if err != nil {
				fmt.Fprintf(os.Stderr, "testing the tree: %v\n", err)
				os.Exit(4)
			}
			if err := renderEvaluation(os.Stdout, t, ev, config.byClass); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	config.addDataFlags(cmd, "test the tree against")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis:<id> reference of the tree to test (required)")
	cmd.Flags().BoolVar(&(config.byClass), "classes", false, "also report the errors on the samples of every class")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.validateData()
}
