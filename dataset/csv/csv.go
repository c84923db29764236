/*
Package csv reads matrices from and writes matrices to CSV streams.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/billylozowski/PitchClassification-decisiontree/dataset"
	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

/*
Options selects what is read from a CSV stream.
*/
type Options struct {
	// Predictor features, read from the columns with their names
	Features []feature.Feature
	// Target feature, read from the column with its name
	Target feature.Feature
	// Rows are kept only if the value of every column in Filters
	// equals the given value, compared ignoring surrounding spaces
	// and case.
	Filters map[string]string
}

/*
Stats counts what happened to the rows of a CSV stream while reading it.
*/
type Stats struct {
	Rows     int
	Filtered int
	// Rows dropped because of a missing value
	Incomplete int
}

// Kept returns the number of rows that made it into the matrix.
func (s Stats) Kept() int {
	return s.Rows - s.Filtered - s.Incomplete
}

/*
IsMissing reports whether a CSV value stands for an undefined value: an
empty string, "?", "NA" or "NaN".
*/
func IsMissing(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "?", "NA", "NaN", "nan":
		return true
	}
	return false
}

/*
ReadBySample takes an io.Reader for a CSV stream, the names of the columns
to read, filters and a lambda function on an integer and a feature.Values.
It parses the rows that pass the filters and for each it calls the lambda
function with the row index and the values of the row for the given
columns. Missing values are left out of the feature.Values. If the lambda
function returns true, it will continue processing the next row, otherwise
it will stop. An error is returned if something goes wrong when reading the
stream, if a column is not in the header or if a value cannot be parsed as
a number.

The first row of the CSV content is expected to be a header with the
names of the columns. Columns not requested are ignored.
*/
func ReadBySample(reader io.Reader, columns []string, filters map[string]string, lambda func(int, feature.Values) (bool, error)) (Stats, error) {
	var stats Stats
	r := csv.NewReader(reader)
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		return stats, fmt.Errorf("reading header: %v", err)
	}
	positions, err := columnPositions(header, columns)
	if err != nil {
		return stats, err
	}
	filterNames := make([]string, 0, len(filters))
	for name := range filters {
		filterNames = append(filterNames, name)
	}
	filterPositions, err := columnPositions(header, filterNames)
	if err != nil {
		return stats, fmt.Errorf("filtering: %v", err)
	}
	for l := 2; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading body: %v", err)
		}
		stats.Rows++
		if !matches(row, filterNames, filterPositions, filters) {
			stats.Filtered++
			continue
		}
		values := make(feature.Values, len(columns))
		for i, name := range columns {
			v := row[positions[i]]
			if IsMissing(v) {
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return stats, fmt.Errorf("parsing line %d: converting %s value %q to float64: %v", l, name, v, err)
			}
			values[name] = f
		}
		ok, err := lambda(stats.Rows-1, values)
		if err != nil {
			return stats, err
		}
		if !ok {
			break
		}
	}
	return stats, nil
}

/*
ReadMatrix takes an io.Reader for a CSV stream and options and returns a
matrix with the rows of the stream that pass the filters and define a value
for every feature and the target. Rows lacking a value are dropped and
counted in the returned Stats.
*/
func ReadMatrix(reader io.Reader, opts Options) (*dataset.Matrix, Stats, error) {
	if opts.Target == nil {
		return nil, Stats{}, fmt.Errorf("reading matrix: no target feature")
	}
	columns := append(feature.Names(opts.Features), opts.Target.Name())
	var samples []feature.Sample
	var incomplete int
	stats, err := ReadBySample(reader, columns, opts.Filters, func(_ int, v feature.Values) (bool, error) {
		if len(v) < len(columns) {
			incomplete++
			return true, nil
		}
		samples = append(samples, v)
		return true, nil
	})
	stats.Incomplete = incomplete
	if err != nil {
		return nil, stats, err
	}
	m, err := dataset.New(opts.Features, opts.Target, samples)
	if err != nil {
		return nil, stats, err
	}
	return m, stats, nil
}

/*
ReadMatrixFromFilePath takes a filepath string and options, opens the file
to which the filepath points to and uses ReadMatrix to return a matrix read
from it. If the filepath is "" os.Stdin is used instead.
*/
func ReadMatrixFromFilePath(filepath string, opts Options) (*dataset.Matrix, Stats, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("reading dataset: %v", err)
		}
		defer f.Close()
	}
	m, stats, err := ReadMatrix(f, opts)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return m, stats, err
}

/*
WriteMatrix takes an io.Writer and a matrix and dumps the matrix onto the
writer in CSV format: a header with the feature names followed by the
target name, then one line per row.
*/
func WriteMatrix(writer io.Writer, m *dataset.Matrix) error {
	w := csv.NewWriter(writer)
	header := append(m.Features(), m.Target())
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %v", err)
	}
	record := make([]string, len(header))
	for i := 0; i < m.Len(); i++ {
		for j := range header[:len(header)-1] {
			record[j] = strconv.FormatFloat(m.Value(i, j), 'g', -1, 64)
		}
		record[len(record)-1] = strconv.FormatFloat(m.TargetValue(i), 'g', -1, 64)
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %v", i+1, err)
		}
	}
	w.Flush()
	return w.Error()
}

func columnPositions(header, columns []string) ([]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	positions := make([]int, len(columns))
	for i, name := range columns {
		p, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("parsing header: no column for feature %s", name)
		}
		positions[i] = p
	}
	return positions, nil
}

func matches(row []string, names []string, positions []int, filters map[string]string) bool {
	for i, name := range names {
		if !strings.EqualFold(strings.TrimSpace(row[positions[i]]), strings.TrimSpace(filters[name])) {
			return false
		}
	}
	return true
}
