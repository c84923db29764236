package sqlite3adapter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/sqldataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

func TestAdapter(t *testing.T) {
	a, err := New(":memory:")
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "?", a.Placeholder(1))
	assert.Equal(t, "?", a.Placeholder(7))
	name, err := a.ColumnName("VA")
	require.NoError(t, err)
	assert.Equal(t, `"VA"`, name)
	_, err = a.ColumnName("")
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	a, err := New(":memory:")
	require.NoError(t, err)
	defer a.Close()
	// every connection to :memory: opens a different database
	a.DB().SetMaxOpenConns(1)

	m, err := dataset.NewFromColumns(
		[]string{"VA", "CS"},
		"RaceTime",
		[][]float64{{1.5, 2.9, 3.2}, {1.2, 1.8, 0.9}},
		[]float64{52.1, 58.3, 60.25},
	)
	require.NoError(t, err)
	ctx := context.Background()
	n, err := sqldataset.Save(ctx, a, "athletes", m)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := sqldataset.Load(ctx, a, "athletes",
		feature.NewContinuousFeatures("VA", "CS"),
		feature.NewContinuousFeature("RaceTime"),
		nil)
	require.NoError(t, err)
	assert.Equal(t, m.Column(0), got.Column(0))
	assert.Equal(t, m.Column(1), got.Column(1))
	assert.Equal(t, m.TargetValues(), got.TargetValues())
}
