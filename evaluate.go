package decisiontree

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
	"github.com/billylozowski/PitchClassification-decisiontree/tree"
)

/*
Predict takes a tree and a sample and returns the value the tree predicts
for the sample. It is equivalent to t.Predict(s).
*/
func Predict(t *tree.Tree, s feature.Sample) (float64, error) {
	return t.Predict(s)
}

/*
RMSE takes predicted and actual values and returns the root mean squared
error sqrt(mean((p_i - a_i)^2)). A *LengthMismatchError is returned if the
slices have different lengths and an *InvalidInputError if they are empty.
*/
func RMSE(predicted, actual []float64) (float64, error) {
	if err := validatePair(predicted, actual); err != nil {
		return 0, err
	}
	return floats.Distance(predicted, actual, 2) / math.Sqrt(float64(len(actual))), nil
}

/*
MAE takes predicted and actual values and returns the mean absolute error,
failing like RMSE.
*/
func MAE(predicted, actual []float64) (float64, error) {
	if err := validatePair(predicted, actual); err != nil {
		return 0, err
	}
	return floats.Distance(predicted, actual, 1) / float64(len(actual)), nil
}

func validatePair(predicted, actual []float64) error {
	if len(predicted) != len(actual) {
		return &LengthMismatchError{Predicted: len(predicted), Actual: len(actual)}
	}
	if len(actual) == 0 {
		return &InvalidInputError{Reason: "no values to compare"}
	}
	return nil
}

/*
Evaluation holds the predictions of a tree for the rows of a matrix and
their errors.
*/
type Evaluation struct {
	Predicted []float64
	Actual    []float64
	// Leaf reached by every row
	Leaves []tree.NodeID
	RMSE   float64
	MAE    float64
}

/*
Evaluate takes a tree and a matrix, predicts every row of the matrix and
returns the predictions with their RMSE and MAE against the matrix target.
*/
func Evaluate(t *tree.Tree, m *dataset.Matrix) (*Evaluation, error) {
	if err := validateMatrix(m); err != nil {
		return nil, err
	}
	e := &Evaluation{
		Predicted: make([]float64, m.Len()),
		Actual:    m.TargetValues(),
		Leaves:    make([]tree.NodeID, m.Len()),
	}
	for i := 0; i < m.Len(); i++ {
		leaf, err := t.Leaf(m.Row(i))
		if err != nil {
			return nil, err
		}
		e.Leaves[i] = leaf
		e.Predicted[i] = t.Node(leaf).Value
	}
	var err error
	if e.RMSE, err = RMSE(e.Predicted, e.Actual); err != nil {
		return nil, err
	}
	if e.MAE, err = MAE(e.Predicted, e.Actual); err != nil {
		return nil, err
	}
	return e, nil
}
