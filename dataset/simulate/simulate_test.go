package simulate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAthletes(t *testing.T) {
	m, err := Athletes(rand.New(rand.NewSource(7)), 200, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, 200, m.Len())
	assert.Equal(t, []string{VisualAcuity, ContrastSensitivity}, m.Features())
	assert.Equal(t, RaceTime, m.Target())

	p := DefaultParams()
	for i := 0; i < m.Len(); i++ {
		va, cs := m.Value(i, 0), m.Value(i, 1)
		assert.True(t, va >= p.VAMin && va < p.VAMax)
		assert.True(t, cs >= p.CSMin && cs < p.CSMax)
	}

	again, err := Athletes(rand.New(rand.NewSource(7)), 200, DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, m.TargetValues(), again.TargetValues())
	assert.Equal(t, m.Column(0), again.Column(0))
}

func TestAthletes_NoNoise(t *testing.T) {
	p := DefaultParams()
	p.Noise = 0
	m, err := Athletes(rand.New(rand.NewSource(1)), 50, p)
	require.NoError(t, err)
	for i := 0; i < m.Len(); i++ {
		want := p.BaseTime
		if m.Value(i, 0) > p.VAThreshold {
			want += p.VAPenalty
		}
		if m.Value(i, 1) < p.CSThreshold {
			want += p.CSPenalty
		}
		assert.Equal(t, want, m.TargetValue(i))
	}
}

func TestAthletes_Invalid(t *testing.T) {
	_, err := Athletes(nil, 10, DefaultParams())
	assert.Error(t, err)
	_, err = Athletes(rand.New(rand.NewSource(1)), 0, DefaultParams())
	assert.Error(t, err)
	p := DefaultParams()
	p.Noise = -1
	_, err = Athletes(rand.New(rand.NewSource(1)), 10, p)
	assert.Error(t, err)
}
