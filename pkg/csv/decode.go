package csv

import (
	"io"

	"go.uber.org/zap"
)

// DecodeAll binds every line after the first to the target type. The
// leading line is assumed to be a header and skipped unconditionally.
// Any binding failure aborts the whole operation and surfaces the
// first error. An input with no data rows yields an empty sequence.
func DecodeAll[T any](r io.Reader, schema Schema[T], opts ...Option) ([]T, error) {
	o := newOptions(opts)
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	rd := newReader(r, o.delimiter)
	rd.next() // assumed header

	var records []T
	line := 1
	for {
		row, ok := rd.next()
		if !ok {
			break
		}
		line++
		rec, err := bindRow(schema, row, nil, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rd.err(); err != nil {
		return nil, err
	}
	return records, nil
}

// DecodeValidated reads the first line as the header, validates it
// against the expected column list, then binds the remaining lines.
// Validation is skipped when expected is nil. A header mismatch aborts
// before any row is processed; per-row binding failures are skipped
// and logged, so a partially malformed file still yields its valid
// subset.
func DecodeValidated[T any](r io.Reader, schema Schema[T], expected []string, opts ...Option) ([]T, error) {
	o := newOptions(opts)
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	rd := newReader(r, o.delimiter)
	header, ok := rd.next()
	if !ok {
		if err := rd.err(); err != nil {
			return nil, err
		}
		if expected != nil {
			err := &HeaderMismatchError{Expected: expected}
			o.logger.Warn("header validation failed",
				zap.Strings("expected", expected),
			)
			return nil, err
		}
		return nil, nil
	}

	if expected != nil {
		if err := ValidateHeader(header, expected); err != nil {
			o.logger.Warn("header validation failed",
				zap.Strings("actual", header),
				zap.Strings("expected", expected),
			)
			return nil, err
		}
	}

	idx := headerIndex(header)

	var records []T
	line := 1
	for {
		row, ok := rd.next()
		if !ok {
			break
		}
		line++
		rec, err := bindRow(schema, row, idx, line)
		if err != nil {
			o.logger.Warn("skipping row",
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}
		records = append(records, rec)
	}
	if err := rd.err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ReadRows decodes the input into raw rows, applying whitespace
// normalization to every data row. When labels is non-empty the first
// line is consumed as the header (not normalized, not returned) and
// its first column must be one of the acceptable labels. Every row
// must match the header's column count.
func ReadRows(r io.Reader, labels []string, opts ...Option) ([][]string, error) {
	o := newOptions(opts)
	rd := newReader(r, o.delimiter)

	width := 0
	line := 0
	if len(labels) > 0 {
		header, ok := rd.next()
		if !ok {
			if err := rd.err(); err != nil {
				return nil, err
			}
			header = nil
		}
		if err := ValidateFirstColumn(header, labels); err != nil {
			o.logger.Warn("header validation failed",
				zap.Strings("actual", header),
				zap.Strings("acceptable_labels", labels),
			)
			return nil, err
		}
		width = len(header)
		line = 1
	}

	var rows [][]string
	for {
		row, ok := rd.next()
		if !ok {
			break
		}
		line++
		if width == 0 {
			width = len(row)
		}
		if len(row) != width {
			return nil, &MalformedRowError{Line: line, Got: len(row), Want: width}
		}
		rows = append(rows, NormalizeRow(row))
	}
	if err := rd.err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadHeader reads the first line as a row, or nil when the input is
// empty. Nothing past the first line is consumed.
func ReadHeader(r io.Reader, opts ...Option) ([]string, error) {
	o := newOptions(opts)
	rd := newReader(r, o.delimiter)
	header, ok := rd.next()
	if !ok {
		return nil, rd.err()
	}
	return header, nil
}

// bindRow maps one row's cells onto a fresh record. Positionally bound
// fields read their declared column; name-bound fields resolve through
// the header index when one is available. An empty cell is null: the
// mutator is not invoked, and a required field fails.
func bindRow[T any](schema Schema[T], row []string, idx map[string]int, line int) (T, error) {
	var rec T
	for i := range schema {
		f := &schema[i]

		pos := f.Position
		if pos < 0 {
			if idx == nil || f.Name == "" {
				continue
			}
			p, ok := idx[f.Name]
			if !ok {
				if f.Required {
					return rec, &RequiredFieldEmptyError{Field: f.label(), Line: line}
				}
				continue
			}
			pos = p
		}

		var cell string
		if pos < len(row) {
			cell = row[pos]
		}
		if cell == "" {
			if f.Required {
				return rec, &RequiredFieldEmptyError{Field: f.label(), Line: line}
			}
			continue
		}
		if f.Set == nil {
			continue
		}
		if err := f.Set(&rec, cell); err != nil {
			return rec, &TypeMismatchError{Field: f.label(), Value: cell, Line: line, Err: err}
		}
	}
	return rec, nil
}
