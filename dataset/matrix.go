package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

/*
Matrix is an immutable table with a numeric column for every predictor
feature and one for the target feature. Every row defines a finite value
for all of them.
*/
type Matrix struct {
	features []string
	index    map[string]int
	target   string
	columns  [][]float64
	y        []float64
}

/*
New takes a slice of predictor features, a target feature and a slice of
samples and returns a Matrix holding the values of the samples for those
features, in the same order. An *InvalidInputError is returned if the target
is nil, if feature names are repeated, or if a sample lacks a value for any
of the features or holds a value the feature considers invalid.
*/
func New(features []feature.Feature, target feature.Feature, samples []feature.Sample) (*Matrix, error) {
	if target == nil {
		return nil, invalidInput("no target feature")
	}
	m, err := newEmpty(feature.Names(features), target.Name(), len(samples))
	if err != nil {
		return nil, err
	}
	all := append(append([]feature.Feature{}, features...), target)
	for i, s := range samples {
		for j, f := range all {
			v, ok := s.ValueFor(f.Name())
			if !ok {
				return nil, invalidInput("row %d has no value for %s", i, f.Name())
			}
			if ok, err := f.Valid(v); !ok {
				return nil, invalidInput("row %d: %v", i, err)
			}
			if j == len(features) {
				m.y = append(m.y, v)
			} else {
				m.columns[j] = append(m.columns[j], v)
			}
		}
	}
	return m, nil
}

/*
NewFromColumns takes the names of the predictor features, the name of the
target feature, one slice of values per predictor and the slice of target
values and returns a Matrix with copies of them. An *InvalidInputError is
returned when lengths do not match or a value is not finite.
*/
func NewFromColumns(features []string, target string, columns [][]float64, y []float64) (*Matrix, error) {
	if len(columns) != len(features) {
		return nil, invalidInput("%d columns given for %d features", len(columns), len(features))
	}
	m, err := newEmpty(features, target, len(y))
	if err != nil {
		return nil, err
	}
	for j, c := range columns {
		if len(c) != len(y) {
			return nil, invalidInput("column %s has %d values, target has %d", features[j], len(c), len(y))
		}
		if i := firstNotFinite(c); i >= 0 {
			return nil, invalidInput("row %d has a non-finite value for %s", i, features[j])
		}
		m.columns[j] = append(m.columns[j], c...)
	}
	if i := firstNotFinite(y); i >= 0 {
		return nil, invalidInput("row %d has a non-finite value for %s", i, target)
	}
	m.y = append(m.y, y...)
	return m, nil
}

func newEmpty(features []string, target string, rows int) (*Matrix, error) {
	if target == "" {
		return nil, invalidInput("no target feature")
	}
	m := &Matrix{
		features: append([]string{}, features...),
		index:    make(map[string]int, len(features)),
		target:   target,
		columns:  make([][]float64, len(features)),
		y:        make([]float64, 0, rows),
	}
	for j, f := range features {
		if f == "" {
			return nil, invalidInput("feature %d has no name", j)
		}
		if f == target {
			return nil, invalidInput("target %s is also a predictor", f)
		}
		if _, ok := m.index[f]; ok {
			return nil, invalidInput("feature %s appears twice", f)
		}
		m.index[f] = j
		m.columns[j] = make([]float64, 0, rows)
	}
	return m, nil
}

func firstNotFinite(vs []float64) int {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// Len returns the number of rows.
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return len(m.y)
}

// Features returns the names of the predictor features, in column order.
func (m *Matrix) Features() []string {
	return append([]string{}, m.features...)
}

// Target returns the name of the target feature.
func (m *Matrix) Target() string {
	return m.target
}

// FeatureIndex returns the column of the named predictor, or -1.
func (m *Matrix) FeatureIndex(name string) int {
	j, ok := m.index[name]
	if !ok {
		return -1
	}
	return j
}

// Value returns the value of predictor column j on row i.
func (m *Matrix) Value(i, j int) float64 {
	return m.columns[j][i]
}

// TargetValue returns the target value of row i.
func (m *Matrix) TargetValue(i int) float64 {
	return m.y[i]
}

// Column returns a copy of the values of predictor column j.
func (m *Matrix) Column(j int) []float64 {
	return append([]float64{}, m.columns[j]...)
}

// TargetValues returns a copy of the target column.
func (m *Matrix) TargetValues() []float64 {
	return append([]float64{}, m.y...)
}

/*
Row returns a feature.Sample view of row i that defines a value for every
predictor and for the target.
*/
func (m *Matrix) Row(i int) feature.Sample {
	return &row{m, i}
}

/*
Subset takes a slice of row indices and returns a new Matrix with those
rows, in the given order.
*/
func (m *Matrix) Subset(indices []int) *Matrix {
	sub := &Matrix{
		features: m.features,
		index:    m.index,
		target:   m.target,
		columns:  make([][]float64, len(m.columns)),
		y:        make([]float64, len(indices)),
	}
	for j, c := range m.columns {
		sub.columns[j] = make([]float64, len(indices))
		for k, i := range indices {
			sub.columns[j][k] = c[i]
		}
	}
	for k, i := range indices {
		sub.y[k] = m.y[i]
	}
	return sub
}

/*
Split takes a random number generator and the fraction of rows to keep for
training and returns two matrices: one with a random sample of
round(fraction x rows) rows and one with the rest. Rows keep their relative
order in both. The same generator state always produces the same split.
*/
func (m *Matrix) Split(rng *rand.Rand, trainFraction float64) (*Matrix, *Matrix, error) {
	if trainFraction <= 0 || trainFraction >= 1 {
		return nil, nil, fmt.Errorf("train fraction must be between 0 and 1, got %v", trainFraction)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("splitting a matrix requires a random number generator")
	}
	n := m.Len()
	nTrain := int(math.Round(trainFraction * float64(n)))
	perm := rng.Perm(n)
	train := append([]int{}, perm[:nTrain]...)
	test := append([]int{}, perm[nTrain:]...)
	sort.Ints(train)
	sort.Ints(test)
	return m.Subset(train), m.Subset(test), nil
}

/*
Folds takes a number of folds k and a random number generator and returns
k disjoint slices of row indices covering all rows, with sizes that differ
at most by one. Rows are assigned after a permutation drawn from the
generator, or in row order when it is nil. Indices within a fold are
sorted. An error is returned if k < 2 or there are fewer rows than folds.
*/
func (m *Matrix) Folds(k int, rng *rand.Rand) ([][]int, error) {
	n := m.Len()
	if k < 2 {
		return nil, fmt.Errorf("at least 2 folds are needed, got %d", k)
	}
	if n < k {
		return nil, fmt.Errorf("cannot split %d rows into %d non-empty folds", n, k)
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		order = rng.Perm(n)
	}
	folds := make([][]int, k)
	start := 0
	for f := 0; f < k; f++ {
		size := n / k
		if f < n%k {
			size++
		}
		folds[f] = append([]int{}, order[start:start+size]...)
		sort.Ints(folds[f])
		start += size
	}
	return folds, nil
}

/*
Complement takes a slice of sorted row indices and returns the sorted
indices of all other rows.
*/
func (m *Matrix) Complement(indices []int) []int {
	excluded := make(map[int]bool, len(indices))
	for _, i := range indices {
		excluded[i] = true
	}
	rest := make([]int, 0, m.Len()-len(indices))
	for i := 0; i < m.Len(); i++ {
		if !excluded[i] {
			rest = append(rest, i)
		}
	}
	return rest
}

func (m *Matrix) String() string {
	return fmt.Sprintf("{Matrix %d rows, features %v, target %s}", m.Len(), m.features, m.target)
}

type row struct {
	m *Matrix
	i int
}

func (r *row) ValueFor(name string) (float64, bool) {
	if name == r.m.target {
		return r.m.y[r.i], true
	}
	j, ok := r.m.index[name]
	if !ok {
		return 0, false
	}
	return r.m.columns[j][r.i], true
}

func (r *row) String() string {
	values := make(feature.Values, len(r.m.features)+1)
	for j, f := range r.m.features {
		values[f] = r.m.columns[j][r.i]
	}
	values[r.m.target] = r.m.y[r.i]
	return values.String()
}
