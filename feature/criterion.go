package feature

import (
	"fmt"
	"strconv"
)

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample satisfies the criterion, or a *MissingFeatureError if the sample
does not define a value for the feature.

Its Feature method returns the name of the feature on which the criterion
is applied.
*/
type Criterion interface {
	Feature() string
	SatisfiedBy(sample Sample) (bool, error)
}

/*
ThresholdCriterion represents one side of a binary split on a continuous
feature: values lower than or equal to the threshold, or values above it.
*/
type ThresholdCriterion struct {
	feature   string
	threshold float64
	above     bool
}

/*
NewAtMostCriterion takes a feature name and a threshold and returns the
criterion satisfied by samples whose value is lower than or equal to it.
*/
func NewAtMostCriterion(feature string, threshold float64) *ThresholdCriterion {
	return &ThresholdCriterion{feature, threshold, false}
}

/*
NewAboveCriterion takes a feature name and a threshold and returns the
criterion satisfied by samples whose value is greater than it.
*/
func NewAboveCriterion(feature string, threshold float64) *ThresholdCriterion {
	return &ThresholdCriterion{feature, threshold, true}
}

/*
Feature returns the name of the feature to which the constraint applies.
*/
func (tc *ThresholdCriterion) Feature() string {
	return tc.feature
}

// Threshold returns the split value of the criterion.
func (tc *ThresholdCriterion) Threshold() float64 {
	return tc.threshold
}

// Above reports whether the criterion selects values over the threshold.
func (tc *ThresholdCriterion) Above() bool {
	return tc.above
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion. It returns a *MissingFeatureError if the sample
does not define a value for the feature.
*/
func (tc *ThresholdCriterion) SatisfiedBy(sample Sample) (bool, error) {
	v, ok := sample.ValueFor(tc.feature)
	if !ok {
		return false, &MissingFeatureError{tc.feature}
	}
	if tc.above {
		return v > tc.threshold, nil
	}
	return v <= tc.threshold, nil
}

func (tc *ThresholdCriterion) String() string {
	op := "<="
	if tc.above {
		op = ">"
	}
	return fmt.Sprintf("%s %s %s", tc.feature, op, strconv.FormatFloat(tc.threshold, 'g', -1, 64))
}
