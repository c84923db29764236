package main

import (
	"context"
	"fmt"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature/yaml"
	"github.com/spf13/cobra"
)

// dataCmdConfig holds the flags of commands reading samples.
type dataCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	metadataInput string
}

func (dcc *dataCmdConfig) addDataFlags(cmd *cobra.Command, use string) {
	cmd.Flags().StringVarP(&(dcc.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL with the samples to "+use+" (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(dcc.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the features, the target and the filters of the input (required)")
}

func (dcc *dataCmdConfig) validateData() error {
	if dcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

// matrix reads the metadata and then the samples it describes.
func (dcc *dataCmdConfig) matrix(ctx context.Context) (*dataset.Matrix, error) {
	logger := getLogger(ctx)
	logger.Debug("reading metadata", "path", dcc.metadataInput)
	md, err := yaml.ReadMetadataFromFile(dcc.metadataInput)
	if err != nil {
		return nil, err
	}
	logger.Debug("reading samples", "input", dcc.dataInput)
	m, err := dcc.readMatrix(ctx, dcc.dataInput, md)
	if err != nil {
		return nil, fmt.Errorf("reading samples: %v", err)
	}
	logger.Debug("samples read", "rows", m.Len(), "features", len(m.Features()), "target", m.Target())
	return m, nil
}
