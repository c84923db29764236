package main

import (
	"fmt"
	"os"
	"strconv"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/inputsample"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput      string
	values         map[string]string
	undefinedValue string
}

type stdoutFeatureValueRequester string

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the target value and class of a sample",
		Long: `Use a tree to predict the target value of a sample and the class it falls in,
either from the values given with --value or answering questions about the
features the tree asks for`,
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
			var s feature.Sample
			var is *inputsample.Sample
			if len(config.values) > 0 {
				s, err = parseValues(config.values)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
			} else {
				features := feature.NewContinuousFeatures(t.Features()...)
				is = inputsample.New(os.Stdin, features, stdoutFeatureValueRequester(config.undefinedValue), config.undefinedValue)
				s = is
			}
			prediction, err := decisiontree.Predict(t, s)
			if err != nil {
				if is != nil && is.Err() != nil {
					err = is.Err()
				}
				fmt.Fprintf(os.Stderr, "predicting: %v\n", err)
				os.Exit(3)
			}
			leaf, err := t.Leaf(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "predicting: %v\n", err)
				os.Exit(3)
			}
			fmt.Printf("Predicted %s is %s, class %d (%s)\n", t.Target(), formatFloat(prediction), leaf, rule(t, leaf))
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a JSON file or redis:<id> reference of the tree to predict with (required)")
	cmd.Flags().StringToStringVar(&(config.values), "value", nil, "feature values of the sample as name=value pairs, e.g. VA=2.1,CS=1.4 (asked for on STDIN when not set)")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define a sample's value for a feature as undefined")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func parseValues(values map[string]string) (feature.Values, error) {
	s := make(feature.Values, len(values))
	for name, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q of %s: %v", v, name, err)
		}
		s[name] = f
	}
	return s, nil
}

func (sfvr stdoutFeatureValueRequester) RequestValueFor(f feature.Feature) error {
	fmt.Printf("Please provide the sample's %s:\n(valid values are real numbers or %s if undefined)\n", f.Name(), string(sfvr))
	return nil
}

func (sfvr stdoutFeatureValueRequester) RejectValueFor(f feature.Feature, value string) error {
	fmt.Printf("%v is not a valid value for the sample's %s. Please provide a real number or %s if undefined.\n", value, f.Name(), string(sfvr))
	return nil
}
