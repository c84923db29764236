package main

import (
	"fmt"
	"os"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/cobra"
)

type fitCmdConfig struct {
	dataCmdConfig
	output string
	report bool
}

func fitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &fitCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Grow, cross-validate and prune a tree in one go",
		Long: `Grow a tree from a set of samples, cross-validate the sizes of its pruned
sequence on the same samples and keep the tree of the size picked by the
selection rule.`,
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
			res, err := decisiontree.Fit(ctx, m, tc, cvc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "fitting the tree: %v\n", err)
				os.Exit(4)
			}
			if config.report {
				renderSequence(os.Stderr, res.Sequence)
				renderCV(os.Stderr, res.CV, cvc.Rule)
			}
			ref, err := config.saveTree(ctx, config.output, res.Tree)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			if config.output == "redis" {
				fmt.Println(ref)
			}
		},
	}
	config.addDataFlags(cmd, "fit the tree to")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the tree will be written in JSON format, or redis to store it in Redis and print its reference (defaults to STDOUT)")
	cmd.Flags().BoolVar(&(config.report), "report", false, "show the pruned sequence and the cross-validation on STDERR")
	addTreeFlags(cmd.Flags())
	addCVFlags(cmd.Flags())
	return cmd
}

func (fcc *fitCmdConfig) Validate() error {
	return fcc.validateData()
}
