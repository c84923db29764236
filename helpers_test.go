package decisiontree

import (
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/dataset/simulate"
)

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func testLogger(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testConfig(t testing.TB) Config {
	cfg := DefaultConfig()
	cfg.Logger = testLogger(t)
	return cfg
}

func athletes(t testing.TB, seed int64, rows int) *dataset.Matrix {
	t.Helper()
	m, err := simulate.Athletes(rand.New(rand.NewSource(seed)), rows, simulate.DefaultParams())
	require.NoError(t, err)
	return m
}

// tenAthletes has VA > 2.75 for three athletes running around 58s.
func tenAthletes(t testing.TB) *dataset.Matrix {
	t.Helper()
	m, err := dataset.NewFromColumns(
		[]string{"VA", "CS"},
		"RaceTime",
		[][]float64{
			{1.0, 1.5, 2.0, 3.0, 2.2, 2.5, 3.5, 2.6, 2.7, 3.8},
			{1.2, 1.8, 0.9, 1.0, 2.1, 1.4, 2.0, 1.6, 1.1, 1.5},
		},
		[]float64{51, 52, 53, 57.99, 52, 51.5, 58.0, 52.5, 52, 58.01},
	)
	require.NoError(t, err)
	return m
}
