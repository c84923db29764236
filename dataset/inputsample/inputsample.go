/*
Package inputsample provides an implementation of feature.Sample whose
values are read from an io.Reader as they are needed.
*/
package inputsample

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/billylozowski/PitchClassification-decisiontree/feature"
)

/*
FeatureValueRequester represents a way to ask
for feature values and reject the given values.
*/
type FeatureValueRequester interface {
	RequestValueFor(feature.Feature) error
	RejectValueFor(feature.Feature, string) error
}

/*
Sample represents a sample whose feature values
are retrieved from a reader. A feature value will be
requested using a FeatureValueRequester before reading it.
*/
type Sample struct {
	obtained       map[string]float64
	undefined      map[string]bool
	undefinedValue string
	scanner        *bufio.Scanner
	requester      FeatureValueRequester
	features       []feature.Feature
	err            error
}

/*
New takes an io.Reader, a slice of features, a
FeatureValueRequester and an undefinedValue coding string
and returns a Sample.

The returned Sample ValueFor method reads feature values first
requesting them with the given FeatureValueRequester and
then parsing the values from the reader.

The parsing expects each value to be presented ending with the
'\n' character, that is in new lines. Lines are read until one
holds a value the feature accepts; the rest are rejected with the
FeatureValueRequester's RejectValueFor method. The undefinedValue
string followed by the '\n' character leaves the feature undefined.

Values are read once: later calls for the same feature return the
value read the first time.
*/
func New(r io.Reader, features []feature.Feature, requester FeatureValueRequester, undefinedValue string) *Sample {
	return &Sample{
		obtained:       make(map[string]float64),
		undefined:      make(map[string]bool),
		undefinedValue: undefinedValue,
		scanner:        bufio.NewScanner(r),
		requester:      requester,
		features:       features,
	}
}

/*
ValueFor returns the value for the feature with the given name, reading
it if it has not been read yet. It returns false if the feature is
undefined for the sample, unknown, or if reading failed, in which case
Err returns the failure.
*/
func (rs *Sample) ValueFor(name string) (float64, bool) {
	if v, ok := rs.obtained[name]; ok {
		return v, true
	}
	if rs.undefined[name] || rs.err != nil {
		return 0, false
	}
	f := feature.Find(rs.features, name)
	if f == nil {
		rs.err = fmt.Errorf("have no information about feature %s, do not know how to read its value", name)
		return 0, false
	}
	if err := rs.requester.RequestValueFor(f); err != nil {
		rs.err = err
		return 0, false
	}
	v, ok, err := rs.read(f)
	if err != nil {
		rs.err = err
		return 0, false
	}
	if !ok {
		rs.undefined[name] = true
		return 0, false
	}
	rs.obtained[name] = v
	return v, true
}

// Err returns the first error found reading values, if any.
func (rs *Sample) Err() error {
	return rs.err
}

// Values returns the values read so far.
func (rs *Sample) Values() feature.Values {
	values := make(feature.Values, len(rs.obtained))
	for k, v := range rs.obtained {
		values[k] = v
	}
	return values
}

func (rs *Sample) read(f feature.Feature) (float64, bool, error) {
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		if line == rs.undefinedValue {
			return 0, false, nil
		}
		value, err := strconv.ParseFloat(line, 64)
		if err == nil {
			if ok, _ := f.Valid(value); ok {
				return value, true, nil
			}
		}
		if err := rs.requester.RejectValueFor(f, line); err != nil {
			return 0, false, err
		}
	}
	if err := rs.scanner.Err(); err != nil {
		return 0, false, err
	}
	return 0, false, fmt.Errorf("EOF when requesting value for %s", f.Name())
}
