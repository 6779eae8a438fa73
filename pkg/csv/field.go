package csv

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FieldType declares the column type a cell's text must coerce into
// when a record is encoded.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
	FieldDate
	FieldBool
)

// NoPosition excludes a field from positional encoding. A field bound
// only by name still participates in validated decoding through the
// header index.
const NoPosition = -1

// Field describes one data member of a record type T.
//
// Position and Name are independent optional attributes: a field may
// carry a position without a label (its header cell encodes as the
// empty string) or a label without a position (it is excluded from
// encoded output entirely).
type Field[T any] struct {
	// Position is the zero-based column index, or NoPosition.
	Position int

	// Name is the header label. Empty means unlabeled.
	Name string

	// Required rejects null cells on strict decode and empty values
	// on encode.
	Required bool

	// Type is checked against the value's text form at encode time.
	Type FieldType

	// Get reads the field's encoded text from a record. An empty
	// string means the field is unset.
	Get func(record *T) string

	// Set coerces cell text into the field. It is not invoked for
	// null cells. A returned error surfaces as a TypeMismatchError.
	Set func(record *T, value string) error
}

func (f *Field[T]) label() string {
	if f.Name != "" {
		return f.Name
	}
	return fmt.Sprintf("position %d", f.Position)
}

// Schema is the field-descriptor table for a record type, built once
// and reused across decode and encode calls.
type Schema[T any] []Field[T]

// Validate rejects schemas where two fields claim the same column.
func (s Schema[T]) Validate() error {
	seen := make(map[int]string, len(s))
	for _, f := range s {
		if f.Position < 0 {
			continue
		}
		if prev, ok := seen[f.Position]; ok {
			return fmt.Errorf("duplicate position %d: %q and %q", f.Position, prev, f.label())
		}
		seen[f.Position] = f.label()
	}
	return nil
}

// width is the number of distinct bound positions, which sizes both
// the header and every encoded row.
func (s Schema[T]) width() int {
	n := 0
	for _, f := range s {
		if f.Position >= 0 {
			n++
		}
	}
	return n
}

func (s Schema[T]) fieldAt(pos int) *Field[T] {
	for i := range s {
		if s[i].Position == pos {
			return &s[i]
		}
	}
	return nil
}

// Header derives the header row: columns ordered by each field's
// declared position and labeled by that field's declared name. A
// position nothing is bound to, or a bound field without a name,
// yields an empty label.
func (s Schema[T]) Header() []string {
	header := make([]string, s.width())
	for i := range header {
		if f := s.fieldAt(i); f != nil {
			header[i] = f.Name
		}
	}
	return header
}

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

// checkType verifies a non-empty value's text form against the
// declared column type.
func checkType(ft FieldType, value string) error {
	switch ft {
	case FieldNumeric:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("not numeric: %q", value)
		}
	case FieldDate:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return nil
			}
		}
		return fmt.Errorf("not a date: %q", value)
	case FieldBool:
		switch strings.ToLower(value) {
		case "true", "t", "yes", "y", "1", "false", "f", "no", "n", "0":
		default:
			return fmt.Errorf("not a bool: %q", value)
		}
	}
	return nil
}
