package decisiontree

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

func TestRMSE(t *testing.T) {
	got, err := RMSE([]float64{55, 56, 54}, []float64{54, 57, 54})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2.0/3), got, 1e-12)
	assert.InDelta(t, 0.8165, got, 1e-4)

	got, err = RMSE([]float64{1, 2}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestMAE(t *testing.T) {
	got, err := MAE([]float64{55, 56, 54}, []float64{54, 57, 54})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, got, 1e-12)
}

func TestRMSE_Errors(t *testing.T) {
	_, err := RMSE([]float64{1, 2}, []float64{1})
	var lme *LengthMismatchError
	require.True(t, errors.As(err, &lme))
	assert.Equal(t, 2, lme.Predicted)
	assert.Equal(t, 1, lme.Actual)

	_, err = MAE(nil, []float64{1})
	assert.True(t, errors.As(err, &lme))

	_, err = RMSE(nil, nil)
	var iie *InvalidInputError
	assert.True(t, errors.As(err, &iie))
}

func TestEvaluate(t *testing.T) {
	m := athletes(t, 51, 120)
	tr, err := Build(context.Background(), m, testConfig(t))
	require.NoError(t, err)

	e, err := Evaluate(tr, m)
	require.NoError(t, err)
	require.Len(t, e.Predicted, m.Len())
	for i := 0; i < m.Len(); i++ {
		p, err := Predict(tr, m.Row(i))
		require.NoError(t, err)
		assert.Equal(t, p, e.Predicted[i])
		assert.Equal(t, tr.Node(e.Leaves[i]).Value, p)
	}
	// the training error of a tree is its deviance
	assert.InDelta(t, tr.Deviance(), e.RMSE*e.RMSE*float64(m.Len()), 1e-6)
	assert.LessOrEqual(t, e.MAE, e.RMSE+1e-12)
}

func TestPredict_MissingRootFeature(t *testing.T) {
	cfg := testConfig(t)
	cfg.MinNodeSize = 2
	tr, err := Build(context.Background(), tenAthletes(t), cfg)
	require.NoError(t, err)

	_, err = Predict(tr, feature.Values{"CS": 1.5})
	var mfe *MissingFeatureError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "VA", mfe.Feature)

	_, err = Evaluate(tr, nil)
	var iie *InvalidInputError
	assert.True(t, errors.As(err, &iie))
}
