package main

import (
	"fmt"
	"os"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/cobra"
)

type pruneCmdConfig struct {
	dataCmdConfig
	treeInput string
	output    string
	size      int
}

func pruneCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &pruneCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune a tree to a given or cross-validated size",
		Long: `Compute the sequence of trees obtained by collapsing the weakest link of a tree
and keep the one for a size, either given or picked by cross-validating the
sizes of the sequence on a set of samples.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			ctx := cmd.Context()
			logger := getLogger(ctx)
			t, err := config.loadTree(ctx, config.treeInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			seq, err := decisiontree.PruneSequence(t)
			if err != nil {
				fmt.Fprintf(os.Stderr, "computing the pruned sequence: %v\n", err)
				os.Exit(3)
			}
			size := config.size
			if size == 0 {
				m, err := config.matrix(ctx)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(2)
				}
				tc, err := config.treeConfig(logger)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				cvc, err := config.cvConfig()
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				res, err := decisiontree.CrossValidate(ctx, m, tc, cvc.Folds, seq.Sizes(), cvc.Rand)
				if err != nil {
					fmt.Fprintf(os.Stderr, "cross-validating: %v\n", err)
					os.Exit(5)
				}
				size = res.Best(cvc.Rule)
				logger.Debug("size cross-validated", "size", size, "rule", cvc.Rule.String(), "deviance", res.Deviance[size])
			}
			pruned, err := decisiontree.SelectBySize(seq, size)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
			logger.Debug("tree pruned", "from", t.Size(), "to", pruned.Size(), "deviance", pruned.Deviance())
			ref, err := config.saveTree(ctx, config.output, pruned)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(7)
			}
			if config.output == "redis" {
				fmt.Println(ref)
			}
		},
	}
	config.addDataFlags(cmd, "cross-validate the pruned sizes on")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis:<id> reference of the tree to prune (required)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the pruned tree will be written in JSON format, or redis to store it in Redis and print its reference (defaults to STDOUT)")
	cmd.Flags().IntVarP(&(config.size), "size", "s", 0, "number of leaves of the pruned tree (defaults to 0: cross-validate the input to pick it)")
	addTreeFlags(cmd.Flags())
	addCVFlags(cmd.Flags())
	return cmd
}

func (pcc *pruneCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if pcc.size < 0 {
		return fmt.Errorf("size cannot be negative")
	}
	if pcc.size == 0 {
		return pcc.validateData()
	}
	return nil
}
