package decisiontree

import (
	"fmt"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

// InvalidInputError is returned when a matrix is nil, empty or malformed.
type InvalidInputError = dataset.InvalidInputError

// MissingFeatureError is returned when a sample to predict lacks a
// feature on its path through the tree.
type MissingFeatureError = tree.MissingFeatureError

/*
InvalidConfigError is returned when the configuration of an operation makes
no sense: a non-positive minimum node size, less than two folds, more folds
than rows...
*/
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func invalidConfig(format string, a ...interface{}) error {
	return &InvalidConfigError{Reason: fmt.Sprintf(format, a...)}
}

// LengthMismatchError is returned when predicted and actual values to
// compare do not have the same length.
type LengthMismatchError struct {
	Predicted int
	Actual    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d predicted values for %d actual values", e.Predicted, e.Actual)
}

func validateMatrix(m *dataset.Matrix) error {
	if m == nil {
		return &InvalidInputError{Reason: "no matrix"}
	}
	if m.Target() == "" {
		return &InvalidInputError{Reason: "no target column"}
	}
	if m.Len() == 0 {
		return &InvalidInputError{Reason: "matrix has no rows"}
	}
	return nil
}
