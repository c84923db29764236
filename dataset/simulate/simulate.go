/*
Package simulate generates synthetic athlete datasets relating visual
acuity (VA) and contrast sensitivity (CS) to race times.
*/
package simulate

import (
	"fmt"
	"math/rand"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
)

// Column names of the generated matrices
const (
	VisualAcuity        = "VA"
	ContrastSensitivity = "CS"
	RaceTime            = "RaceTime"
)

/*
Params describes how race times depend on vision. RaceTime is BaseTime,
plus VAPenalty when VA exceeds VAThreshold, plus CSPenalty when CS is below
CSThreshold, plus normal noise with standard deviation Noise.
VA is drawn uniformly from [VAMin, VAMax) and CS from [CSMin, CSMax).
*/
type Params struct {
	VAMin, VAMax float64
	CSMin, CSMax float64
	BaseTime     float64
	VAThreshold  float64
	VAPenalty    float64
	CSThreshold  float64
	CSPenalty    float64
	Noise        float64
}

// DefaultParams returns the parameters of a population whose times jump
// by 6s above VA 2.75 and by 2s below CS 1.2.
func DefaultParams() Params {
	return Params{
		VAMin:       0.5,
		VAMax:       4,
		CSMin:       0.5,
		CSMax:       2.5,
		BaseTime:    52,
		VAThreshold: 2.75,
		VAPenalty:   6,
		CSThreshold: 1.2,
		CSPenalty:   2,
		Noise:       0.5,
	}
}

/*
Athletes takes a random number generator, a number of rows and parameters
and returns a matrix with VA and CS features and a RaceTime target. The
same generator state always yields the same matrix.
*/
func Athletes(rng *rand.Rand, rows int, p Params) (*dataset.Matrix, error) {
	if rng == nil {
		return nil, fmt.Errorf("simulating athletes: no random number generator")
	}
	if rows < 1 {
		return nil, fmt.Errorf("simulating athletes: rows must be positive, got %d", rows)
	}
	if p.VAMax < p.VAMin || p.CSMax < p.CSMin || p.Noise < 0 {
		return nil, fmt.Errorf("simulating athletes: invalid parameters %+v", p)
	}
	va := make([]float64, rows)
	cs := make([]float64, rows)
	y := make([]float64, rows)
	for i := 0; i < rows; i++ {
		va[i] = p.VAMin + rng.Float64()*(p.VAMax-p.VAMin)
		cs[i] = p.CSMin + rng.Float64()*(p.CSMax-p.CSMin)
		t := p.BaseTime + rng.NormFloat64()*p.Noise
		if va[i] > p.VAThreshold {
			t += p.VAPenalty
		}
		if cs[i] < p.CSThreshold {
			t += p.CSPenalty
		}
		y[i] = t
	}
	return dataset.NewFromColumns(
		[]string{VisualAcuity, ContrastSensitivity},
		RaceTime,
		[][]float64{va, cs},
		y,
	)
}
