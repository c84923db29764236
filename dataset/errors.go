package dataset

import "fmt"

/*
InvalidInputError is returned when a matrix cannot be built or used because
of its contents: no rows, no target column, values missing or not finite,
columns of different lengths...
*/
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func invalidInput(format string, a ...interface{}) error {
	return &InvalidInputError{Reason: fmt.Sprintf(format, a...)}
}
