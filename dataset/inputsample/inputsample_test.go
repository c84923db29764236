package inputsample

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

type recordingRequester struct {
	requested []string
	rejected  []string
	err       error
}

func (rr *recordingRequester) RequestValueFor(f feature.Feature) error {
	rr.requested = append(rr.requested, f.Name())
	return rr.err
}

func (rr *recordingRequester) RejectValueFor(f feature.Feature, v string) error {
	rr.rejected = append(rr.rejected, f.Name()+"="+v)
	return nil
}

func TestSample(t *testing.T) {
	rr := &recordingRequester{}
	features := feature.NewContinuousFeatures("VA", "CS", "Age")
	s := New(strings.NewReader("sharp\n2.9\nNaN\n1.1\n?\n"), features, rr, "?")

	v, ok := s.ValueFor("VA")
	require.True(t, ok)
	assert.Equal(t, 2.9, v)
	v, ok = s.ValueFor("VA")
	require.True(t, ok)
	assert.Equal(t, 2.9, v)

	v, ok = s.ValueFor("CS")
	require.True(t, ok)
	assert.Equal(t, 1.1, v)

	_, ok = s.ValueFor("Age")
	assert.False(t, ok)
	_, ok = s.ValueFor("Age")
	assert.False(t, ok)
	require.NoError(t, s.Err())

	assert.Equal(t, []string{"VA", "CS", "Age"}, rr.requested)
	assert.Equal(t, []string{"VA=sharp", "CS=NaN"}, rr.rejected)
	assert.Equal(t, feature.Values{"VA": 2.9, "CS": 1.1}, s.Values())
}

func TestSample_Errors(t *testing.T) {
	features := feature.NewContinuousFeatures("VA")

	s := New(strings.NewReader(""), features, &recordingRequester{}, "?")
	_, ok := s.ValueFor("VA")
	assert.False(t, ok)
	assert.Error(t, s.Err())

	s = New(strings.NewReader("1\n"), features, &recordingRequester{}, "?")
	_, ok = s.ValueFor("CS")
	assert.False(t, ok)
	assert.Error(t, s.Err())

	boom := errors.New("boom")
	s = New(strings.NewReader("1\n"), features, &recordingRequester{err: boom}, "?")
	_, ok = s.ValueFor("VA")
	assert.False(t, ok)
	assert.Equal(t, boom, s.Err())
}
