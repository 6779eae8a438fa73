package csv

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// EncodeAll writes a byte-order mark, the schema's position-ordered
// header row, then one line per record with cells in the same position
// order. All bound fields are written even when unset (empty cell).
// A required field with an empty value or a value failing its declared
// type aborts the whole write; output already flushed to the caller's
// writer is then invalid and must be discarded.
func EncodeAll[T any](w io.Writer, schema Schema[T], records []T, opts ...Option) error {
	o := newOptions(opts)
	if err := schema.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	delim := string(o.delimiter)

	if _, err := bw.WriteString(bom); err != nil {
		return err
	}
	if err := writeRow(bw, schema.Header(), delim); err != nil {
		return err
	}

	width := schema.width()
	for i := range records {
		cells := make([]string, width)
		for j := range schema {
			f := &schema[j]
			if f.Position < 0 || f.Position >= width {
				continue
			}

			var value string
			if f.Get != nil {
				value = f.Get(&records[i])
			}
			line := i + 2
			if value == "" {
				if f.Required {
					return &RequiredFieldEmptyError{Field: f.label(), Line: line}
				}
			} else if err := checkType(f.Type, value); err != nil {
				return &TypeMismatchError{Field: f.label(), Value: value, Line: line, Err: err}
			}
			cells[f.Position] = value
		}
		if err := writeRow(bw, cells, delim); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeRows writes a byte-order mark, the given header, then the raw
// rows. The untyped counterpart of EncodeAll.
func EncodeRows(w io.Writer, header []string, rows [][]string, opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)
	delim := string(o.delimiter)

	if _, err := bw.WriteString(bom); err != nil {
		return err
	}
	if err := writeRow(bw, header, delim); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeRow(bw, row, delim); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Marshal encodes records into a byte slice using EncodeAll.
func Marshal[T any](schema Schema[T], records []T, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeAll(&buf, schema, records, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(bw *bufio.Writer, cells []string, delim string) error {
	if _, err := bw.WriteString(strings.Join(cells, delim)); err != nil {
		return err
	}
	_, err := bw.WriteString(lineTerminator)
	return err
}
