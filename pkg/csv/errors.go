package csv

import "fmt"

// HeaderMismatchError reports an actual header that failed validation.
// Both sides are carried so the caller's logging layer can format a
// diagnostic; Actual is nil when the input had no header line at all.
type HeaderMismatchError struct {
	Actual   []string
	Expected []string
}

func (e *HeaderMismatchError) Error() string {
	if e.Actual == nil {
		return fmt.Sprintf("header missing, expected %v", e.Expected)
	}
	return fmt.Sprintf("header mismatch: actual %v, expected %v", e.Actual, e.Expected)
}

// RequiredFieldEmptyError reports a mandatory column with no value at
// encode or strict-decode time.
type RequiredFieldEmptyError struct {
	Field string
	Line  int
}

func (e *RequiredFieldEmptyError) Error() string {
	return fmt.Sprintf("line %d: required field %q is empty", e.Line, e.Field)
}

// TypeMismatchError reports cell text that cannot be coerced into its
// bound field's type.
type TypeMismatchError struct {
	Field string
	Value string
	Line  int
	Err   error
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("line %d: field %q: cannot coerce %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// MalformedRowError reports a row whose cell count does not match the
// header during raw-row decoding.
type MalformedRowError struct {
	Line int
	Got  int
	Want int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: row has %d columns, expected %d", e.Line, e.Got, e.Want)
}
