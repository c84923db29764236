/*
Package yaml provides methods to parse the metadata of a dataset, that is,
the predictor features, the target feature and the row filters, from YAML
documents.
*/
package yaml

import (
	"fmt"
	"os"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
	yaml "gopkg.in/yaml.v2"
)

// Metadata describes which columns of a dataset feed a tree.
type Metadata struct {
	// Features are the predictors, in the order used to break ties
	// between equally good splits.
	Features []feature.Feature
	// Target is the feature the tree predicts.
	Target feature.Feature
	// Filters maps column names to the only value rows may hold on
	// them to be kept (e.g. Handedness: Right).
	Filters map[string]string
}

/*
ReadMetadata takes a slice of bytes with a metadata description in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object containing:
  - a features property, either a list of predictor names or an object with a
    property for each predictor whose value is the string 'continuous'.
    Order is preserved in both cases.
  - a target property with the name of the feature to predict.
  - an optional filters property, an object of column names to values.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	raw := struct {
		Features *featureList      `yaml:"features"`
		Target   string            `yaml:"target"`
		Filters  map[string]string `yaml:"filters"`
	}{}
	err := yaml.Unmarshal(md, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if raw.Features == nil {
		return nil, fmt.Errorf("metadata has no feature information")
	}
	if raw.Target == "" {
		return nil, fmt.Errorf("metadata has no target feature")
	}
	names := raw.Features.names
	if len(names) == 0 {
		return nil, fmt.Errorf("metadata declares no features")
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if n == raw.Target {
			return nil, fmt.Errorf("target feature %s cannot also be a predictor", n)
		}
		if seen[n] {
			return nil, fmt.Errorf("feature %s declared twice", n)
		}
		seen[n] = true
	}
	return &Metadata{
		Features: feature.NewContinuousFeatures(names...),
		Target:   feature.NewContinuousFeature(raw.Target),
		Filters:  raw.Filters,
	}, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	m, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return m, err
}

// featureList keeps the declaration order of the features whichever
// of the two accepted forms is used.
type featureList struct {
	names []string
}

func (fl *featureList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var list []string
	if err := unmarshal(&list); err == nil {
		fl.names = list
		return nil
	}
	var ms yaml.MapSlice
	if err := unmarshal(&ms); err != nil {
		return fmt.Errorf("invalid features declaration: %v", err)
	}
	for _, item := range ms {
		kind, _ := item.Value.(string)
		if kind != "continuous" {
			return fmt.Errorf("feature %v: unsupported feature type %v", item.Key, item.Value)
		}
		fl.names = append(fl.names, fmt.Sprintf("%v", item.Key))
	}
	return nil
}
