package main

import (
	"fmt"
	"os"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/spf13/cobra"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput string
	classes   bool
	sequence  bool
	delete    bool
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a regression tree",
		Long:  `Show a regression tree, the classes its leaves define and the sequence of trees obtained pruning it`,
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
			fmt.Println(t)
			if config.classes {
				renderClasses(os.Stdout, t)
			}
			if config.sequence {
				seq, err := decisiontree.PruneSequence(t)
				if err != nil {
					fmt.Fprintf(os.Stderr, "computing the pruned sequence: %v\n", err)
					os.Exit(3)
				}
				renderSequence(os.Stdout, seq)
			}
			if config.delete {
				if err := config.deleteTree(ctx, config.treeInput); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
			}
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis:<id> reference of the tree to show (required)")
	cmd.Flags().BoolVar(&(config.classes), "classes", false, "show the rule, prediction and size of every class")
	cmd.Flags().BoolVar(&(config.sequence), "sequence", false, "show the sequence of trees obtained collapsing the weakest link")
	cmd.Flags().BoolVar(&(config.delete), "delete", false, "delete the tree from Redis once shown")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if tcc.delete && !isRedisRef(tcc.treeInput) {
		return fmt.Errorf("only trees stored in Redis can be deleted")
	}
	return nil
}
