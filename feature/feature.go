package feature

import (
	"fmt"
	"math"
)

/*
Feature represents a numeric property that can be observed on a sample
*/
type Feature interface {
	Name() string
	Valid(float64) (bool, error)
}

/*
ContinuousFeature represents a property that can be observed and that can take
a real numeric value
*/
type ContinuousFeature struct {
	name string
}

/*
NewContinuousFeature takes a name string and returns a continuous feature with
the given name.
*/
func NewContinuousFeature(name string) *ContinuousFeature {
	return &ContinuousFeature{name}
}

/*
NewContinuousFeatures takes a list of names and returns a slice with a
continuous feature for each of them, in the same order.
*/
func NewContinuousFeatures(names ...string) []Feature {
	features := make([]Feature, 0, len(names))
	for _, n := range names {
		features = append(features, NewContinuousFeature(n))
	}
	return features
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

/*
Valid receives a float64 value and returns a boolean and an error. When the
value is a finite number it returns true and nil, otherwise it returns
false and an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value float64) (bool, error) {
	if math.IsNaN(value) {
		return false, fmt.Errorf("continuous feature %s got NaN value", cf.name)
	}
	if math.IsInf(value, 0) {
		return false, fmt.Errorf("continuous feature %s got infinite value %v", cf.name, value)
	}
	return true, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

// Names returns the names of the given features, in order.
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name()
	}
	return names
}

// Find returns the feature in the slice with the given name, or nil.
func Find(features []Feature, name string) Feature {
	for _, f := range features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
