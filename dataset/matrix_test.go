package dataset

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func athletes(t *testing.T, n int) *Matrix {
	t.Helper()
	va := make([]float64, n)
	cs := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		va[i] = float64(i)
		cs[i] = float64(n - i)
		y[i] = 50 + float64(i%7)
	}
	m, err := NewFromColumns([]string{"VA", "CS"}, "RaceTime", [][]float64{va, cs}, y)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	features := feature.NewContinuousFeatures("VA", "CS")
	target := feature.NewContinuousFeature("RaceTime")
	m, err := New(features, target, []feature.Sample{
		feature.Values{"VA": 1, "CS": 2, "RaceTime": 55},
		feature.Values{"VA": 3, "CS": 1, "RaceTime": 58, "Extra": 7},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"VA", "CS"}, m.Features())
	assert.Equal(t, "RaceTime", m.Target())
	assert.Equal(t, 1, m.FeatureIndex("CS"))
	assert.Equal(t, -1, m.FeatureIndex("Extra"))
	assert.Equal(t, 3.0, m.Value(1, 0))
	assert.Equal(t, []float64{55, 58}, m.TargetValues())

	v, ok := m.Row(1).ValueFor("RaceTime")
	assert.True(t, ok)
	assert.Equal(t, 58.0, v)
	_, ok = m.Row(1).ValueFor("Extra")
	assert.False(t, ok)
}

func TestNew_InvalidInput(t *testing.T) {
	features := feature.NewContinuousFeatures("VA")
	target := feature.NewContinuousFeature("RaceTime")
	tests := []struct {
		name    string
		target  feature.Feature
		samples []feature.Sample
	}{
		{"no target", nil, nil},
		{"missing predictor", target, []feature.Sample{feature.Values{"RaceTime": 1}}},
		{"missing target", target, []feature.Sample{feature.Values{"VA": 1}}},
		{"nan", target, []feature.Sample{feature.Values{"VA": math.NaN(), "RaceTime": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(features, tt.target, tt.samples)
			var iie *InvalidInputError
			assert.True(t, errors.As(err, &iie), "got %v", err)
		})
	}
}

func TestNewFromColumns_InvalidInput(t *testing.T) {
	_, err := NewFromColumns([]string{"VA"}, "RaceTime", [][]float64{{1, 2}}, []float64{1})
	assert.Error(t, err)
	_, err = NewFromColumns([]string{"VA", "VA"}, "RaceTime", [][]float64{{1}, {1}}, []float64{1})
	assert.Error(t, err)
	_, err = NewFromColumns([]string{"RaceTime"}, "RaceTime", [][]float64{{1}}, []float64{1})
	assert.Error(t, err)
	_, err = NewFromColumns([]string{"VA"}, "", [][]float64{{1}}, []float64{1})
	assert.Error(t, err)
	_, err = NewFromColumns([]string{"VA"}, "RaceTime", [][]float64{{1}}, []float64{math.Inf(1)})
	assert.Error(t, err)
}

func TestNewFromColumns_Copies(t *testing.T) {
	va := []float64{1, 2}
	m, err := NewFromColumns([]string{"VA"}, "RaceTime", [][]float64{va}, []float64{3, 4})
	require.NoError(t, err)
	va[0] = 100
	assert.Equal(t, 1.0, m.Value(0, 0))
	c := m.Column(0)
	c[1] = 100
	assert.Equal(t, 2.0, m.Value(1, 0))
}

func TestSubset(t *testing.T) {
	m := athletes(t, 10)
	sub := m.Subset([]int{9, 2})
	require.Equal(t, 2, sub.Len())
	assert.Equal(t, 9.0, sub.Value(0, 0))
	assert.Equal(t, m.TargetValue(2), sub.TargetValue(1))
	assert.Equal(t, []int{0, 1, 3, 4, 5, 6, 7, 8}, m.Complement([]int{2, 9}))
}

func TestSplit(t *testing.T) {
	m := athletes(t, 10)
	train, test, err := m.Split(rand.New(rand.NewSource(1)), 0.7)
	require.NoError(t, err)
	assert.Equal(t, 7, train.Len())
	assert.Equal(t, 3, test.Len())

	seen := map[float64]bool{}
	for _, part := range []*Matrix{train, test} {
		for i := 0; i < part.Len(); i++ {
			seen[part.Value(i, 0)] = true
			if i > 0 {
				assert.Less(t, part.Value(i-1, 0), part.Value(i, 0), "rows keep their order")
			}
		}
	}
	assert.Len(t, seen, 10)

	again, _, err := m.Split(rand.New(rand.NewSource(1)), 0.7)
	require.NoError(t, err)
	assert.Equal(t, train.Column(0), again.Column(0))

	_, _, err = m.Split(rand.New(rand.NewSource(1)), 1)
	assert.Error(t, err)
	_, _, err = m.Split(nil, 0.5)
	assert.Error(t, err)
}

func TestFolds(t *testing.T) {
	m := athletes(t, 11)
	folds, err := m.Folds(3, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10}}, folds)

	folds, err = m.Folds(5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	count := 0
	seen := map[int]bool{}
	for _, f := range folds {
		assert.True(t, len(f) == 2 || len(f) == 3)
		for _, i := range f {
			seen[i] = true
			count++
		}
	}
	assert.Equal(t, 11, count)
	assert.Len(t, seen, 11)

	_, err = m.Folds(1, nil)
	assert.Error(t, err)
	_, err = m.Folds(12, nil)
	assert.Error(t, err)
}
