package models

import "fmt"

// ValidationError is returned when a field value is syntactically or
// semantically invalid. It carries the name of the field and a
// human-readable reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ParseError is returned when a textual line does not decompose into the
// expected fields or a decomposed field fails validation. It wraps the
// underlying error.
type ParseError struct {
	Err error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parsing record: %s", e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}
