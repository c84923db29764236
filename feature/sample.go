package feature

import (
	"fmt"
	"sort"
	"strings"
)

/*
Sample is an interface for something that can satisfy a Criterion or
be routed through a tree.

Its ValueFor method returns the value of the sample for the feature with
the given name and whether the sample defines it at all.
*/
type Sample interface {
	ValueFor(name string) (float64, bool)
}

// Values is a Sample backed by a map of feature names to values.
type Values map[string]float64

// ValueFor returns the value stored under the given feature name.
func (v Values) ValueFor(name string) (float64, bool) {
	f, ok := v[name]
	return f, ok
}

func (v Values) String() string {
	names := make([]string, 0, len(v))
	for n := range v {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s:%v", n, v[n])
	}
	return "[" + strings.Join(parts, " ") + "]"
}

/*
MissingFeatureError is returned when a sample does not define a value for a
feature that has to be evaluated on it.
*/
type MissingFeatureError struct {
	Feature string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("sample has no value for feature %s", e.Feature)
}
