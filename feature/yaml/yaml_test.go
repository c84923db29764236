package yaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMetadata_List(t *testing.T) {
	md, err := ReadMetadata([]byte(`
features: [VA, CS]
target: RaceTime
filters:
  Handedness: Right
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"VA", "CS"}, feature.Names(md.Features))
	assert.Equal(t, "RaceTime", md.Target.Name())
	assert.Equal(t, map[string]string{"Handedness": "Right"}, md.Filters)
}

func TestReadMetadata_MapKeepsOrder(t *testing.T) {
	md, err := ReadMetadata([]byte(`
features:
  CS: continuous
  VA: continuous
  Age: continuous
target: RaceTime
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"CS", "VA", "Age"}, feature.Names(md.Features))
	assert.Nil(t, md.Filters)
}

func TestReadMetadata_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no features", "target: RaceTime\n"},
		{"no target", "features: [VA]\n"},
		{"empty features", "features: []\ntarget: RaceTime\n"},
		{"target as predictor", "features: [VA, RaceTime]\ntarget: RaceTime\n"},
		{"duplicated", "features: [VA, VA]\ntarget: RaceTime\n"},
		{"discrete feature", "features:\n  Hand: [Left, Right]\ntarget: RaceTime\n"},
		{"not yaml", "features: [VA\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMetadata([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestReadMetadataFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metadata.yml")
	require.NoError(t, os.WriteFile(path, []byte("features: [VA, CS]\ntarget: RaceTime\n"), 0o644))

	md, err := ReadMetadataFromFile(path)
	require.NoError(t, err)
	assert.Len(t, md.Features, 2)

	_, err = ReadMetadataFromFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
