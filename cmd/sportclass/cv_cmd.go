package main

import (
	"fmt"
	"os"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/cobra"
)

type cvCmdConfig struct {
	dataCmdConfig
	sizes []int
}

func cvCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &cvCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "cv",
		Short: "Cross-validate tree sizes on a set of samples",
		Long:  `Estimate the held-out deviance of pruned trees of different sizes with k-fold cross-validation and show the size each selection rule picks.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			logger := getLogger(ctx)
			m, err := config.matrix(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			tc, err := config.treeConfig(logger)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			cvc, err := config.cvConfig()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			res, err := decisiontree.CrossValidate(ctx, m, tc, cvc.Folds, config.sizes, cvc.Rand)
			if err != nil {
				fmt.Fprintf(os.Stderr, "cross-validating: %v\n", err)
				os.Exit(4)
			}
			renderCV(os.Stdout, res, cvc.Rule)
		},
	}
	config.addDataFlags(cmd, "cross-validate on")
	cmd.Flags().IntSliceVar(&(config.sizes), "sizes", nil, "comma separated tree sizes to evaluate (defaults to every size up to the size of the tree grown on all samples)")
	addTreeFlags(cmd.Flags())
	addCVFlags(cmd.Flags())
	return cmd
}

func (ccc *cvCmdConfig) Validate() error {
	return ccc.validateData()
}
