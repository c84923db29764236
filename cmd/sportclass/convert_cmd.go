package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type convertCmdConfig struct {
	dataCmdConfig
	output string
}

func convertCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &convertCmdConfig{dataCmdConfig: dataCmdConfig{rootCmdConfig: rootConfig}}
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Copy a set of samples to another format",
		Long: `Read the samples described by the metadata from an input and write them to an
output, dropping filtered rows and rows with missing values on the way`,
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
			if err := config.writeMatrix(ctx, config.output, m); err != nil {
				fmt.Fprintf(os.Stderr, "writing samples: %v\n", err)
				os.Exit(3)
			}
		},
	}
	config.addDataFlags(cmd, "convert")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL the samples are written to (defaults to STDOUT, as CSV)")
	return cmd
}

func (ccc *convertCmdConfig) Validate() error {
	return ccc.validateData()
}
