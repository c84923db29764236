package csv

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

const athletesCSV = `Athlete,Handedness,VA,CS,RaceTime
a1,Right,1.5,1.2,52.1
a2,Left,2.9,1.8,58.3
a3,right,3.1,0.9,60.2
a4,Right,NA,1.1,53.0
a5,Right,2.0,,52.4
a6,Right,2.2,1.6,?
a7,Right,0.8,2.0,51.7
`

func options(filters map[string]string) Options {
	return Options{
		Features: feature.NewContinuousFeatures("VA", "CS"),
		Target:   feature.NewContinuousFeature("RaceTime"),
		Filters:  filters,
	}
}

func TestReadMatrix(t *testing.T) {
	m, stats, err := ReadMatrix(strings.NewReader(athletesCSV), options(nil))
	require.NoError(t, err)
	assert.Equal(t, Stats{Rows: 7, Incomplete: 3}, stats)
	assert.Equal(t, 4, stats.Kept())
	require.Equal(t, 4, m.Len())
	assert.Equal(t, []string{"VA", "CS"}, m.Features())
	assert.Equal(t, "RaceTime", m.Target())
	assert.Equal(t, []float64{1.5, 2.9, 3.1, 0.8}, m.Column(0))
	assert.Equal(t, []float64{52.1, 58.3, 60.2, 51.7}, m.TargetValues())
}

func TestReadMatrix_Filters(t *testing.T) {
	m, stats, err := ReadMatrix(strings.NewReader(athletesCSV), options(map[string]string{"Handedness": "Right"}))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Filtered)
	assert.Equal(t, 3, stats.Incomplete)
	assert.Equal(t, []float64{52.1, 60.2, 51.7}, m.TargetValues())
}

func TestReadMatrix_Errors(t *testing.T) {
	_, _, err := ReadMatrix(strings.NewReader(athletesCSV), options(map[string]string{"Sex": "F"}))
	assert.Error(t, err)

	_, _, err = ReadMatrix(strings.NewReader("VA,RaceTime\n1,2\n"), options(nil))
	assert.Error(t, err)

	_, _, err = ReadMatrix(strings.NewReader("VA,CS,RaceTime\n1,fast,2\n"), options(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = ReadMatrix(strings.NewReader(""), options(nil))
	assert.Error(t, err)

	_, _, err = ReadMatrix(strings.NewReader(athletesCSV), Options{Features: feature.NewContinuousFeatures("VA")})
	assert.Error(t, err)

	_, _, err = ReadMatrix(strings.NewReader("VA,CS,RaceTime\n1,Inf,2\n"), options(nil))
	var iie *dataset.InvalidInputError
	assert.True(t, errors.As(err, &iie))
}

func TestReadBySample_Stops(t *testing.T) {
	var seen []feature.Values
	stats, err := ReadBySample(strings.NewReader(athletesCSV), []string{"VA"}, nil, func(i int, v feature.Values) (bool, error) {
		seen = append(seen, v)
		return i < 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, []feature.Values{{"VA": 1.5}, {"VA": 2.9}}, seen)
}

func TestWriteMatrix(t *testing.T) {
	m, _, err := ReadMatrix(strings.NewReader(athletesCSV), options(nil))
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, WriteMatrix(buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "VA,CS,RaceTime\n1.5,1.2,52.1\n"))

	again, _, err := ReadMatrix(buf, options(nil))
	require.NoError(t, err)
	assert.Equal(t, m.TargetValues(), again.TargetValues())
	assert.Equal(t, m.Column(1), again.Column(1))
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", " ", "?", "NA", "NaN"} {
		assert.True(t, IsMissing(v), "%q", v)
	}
	assert.False(t, IsMissing("0"))
}
