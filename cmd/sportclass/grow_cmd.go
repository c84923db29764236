package main

import (
	"fmt"
	"os"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	dataCmdConfig
	output string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of samples",
		Long:  `Grow a regression tree from a set of samples to predict their target feature, splitting while the deviance reduction is worth it.`,
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
			logger.Debug("growing tree", "samples", m.Len(), "features", len(m.Features()), "target", m.Target())
			t, err := decisiontree.Build(ctx, m, tc)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(4)
			}
			logger.Debug("tree grown", "size", t.Size(), "deviance", t.Deviance())
			ref, err := config.saveTree(ctx, config.output, t)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			if config.output == "redis" {
				fmt.Println(ref)
			}
		},
	}
	config.addDataFlags(cmd, "grow the tree from")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the tree will be written in JSON format, or redis to store it in Redis and print its reference (defaults to STDOUT)")
	addTreeFlags(cmd.Flags())
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	return gcc.validateData()
}
