package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScrivenerFromFile(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		scrivener, err := NewScrivenerFromFile("../../dev/examples/sales.intake.yml")
		assert.NoError(t, err)
		assert.NotNil(t, scrivener)
		assert.Equal(t, "sales-example-1", scrivener.Intake.Name)
		assert.Equal(t, []string{"id", "sale_date", "amount", "region"}, scrivener.Intake.Source.ExpectedHeader)
		assert.Equal(t, "local", scrivener.Intake.Repository.Type)
		assert.Equal(t, "parquet", scrivener.Intake.Preserver.Type)
		assert.Len(t, scrivener.Intake.Preserver.Parquet.Schema, 4)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewScrivenerFromFile("does-not-exist.yml")
		assert.Error(t, err)
	})
}

func TestParquetFields(t *testing.T) {
	fields := ParquetFields([]ParquetField{
		{Name: "id", Type: "BYTE_ARRAY", ConvertedType: "UTF8", RepetitionType: "OPTIONAL"},
	})
	assert.Len(t, fields, 1)
	assert.Equal(t, "id", fields[0].Name)
	assert.Equal(t, "UTF8", fields[0].ConvertedType)
}
