package parquet

import (
	"fmt"
	"strings"
)

type Field struct {
	Name           string
	Type           string
	ConvertedType  string
	RepetitionType string
}

type Schema []Field

// ToCSVWriterSchema renders the metadata strings the parquet-go CSV
// writer expects, one per column.
func (s Schema) ToCSVWriterSchema() []string {
	schema := make([]string, len(s))
	for i, field := range s {
		parts := []string{
			fmt.Sprintf("name=%s", field.Name),
			fmt.Sprintf("type=%s", field.Type),
		}
		if field.ConvertedType != "" {
			parts = append(parts, fmt.Sprintf("convertedtype=%s", field.ConvertedType))
		}
		repetition := field.RepetitionType
		if repetition == "" {
			repetition = "OPTIONAL"
		}
		parts = append(parts, fmt.Sprintf("repetitiontype=%s", repetition))
		schema[i] = strings.Join(parts, ", ")
	}

	return schema
}

// FromHeader derives an all-string schema from a table header. Every
// column is an optional UTF8 byte array; unlabeled or unsafe labels
// fall back to a positional name.
func FromHeader(header []string) Schema {
	s := make(Schema, len(header))
	for i, label := range header {
		s[i] = Field{
			Name:          columnName(label, i),
			Type:          "BYTE_ARRAY",
			ConvertedType: "UTF8",
		}
	}
	return s
}

// RowFromCells maps a table row onto the CSV writer's record shape.
// Null cells stay nil so they land as parquet nulls, not empty strings.
func (s Schema) RowFromCells(cells []string) ([]*string, error) {
	if len(s) != len(cells) {
		return nil, fmt.Errorf(
			"schema and row width mismatch: schema has %d columns, row has %d cells",
			len(s),
			len(cells),
		)
	}

	row := make([]*string, len(cells))
	for i := range cells {
		if cells[i] == "" {
			continue
		}
		row[i] = &cells[i]
	}
	return row, nil
}

func columnName(label string, pos int) string {
	var b strings.Builder
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("col_%d", pos)
	}
	return b.String()
}
