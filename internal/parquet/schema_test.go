package parquet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSVWriterSchema(t *testing.T) {
	s := Schema{
		{Name: "id", Type: "BYTE_ARRAY", ConvertedType: "UTF8"},
		{Name: "count", Type: "INT64", RepetitionType: "REQUIRED"},
	}
	assert.Equal(t, []string{
		"name=id, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL",
		"name=count, type=INT64, repetitiontype=REQUIRED",
	}, s.ToCSVWriterSchema())
}

func TestFromHeader(t *testing.T) {
	s := FromHeader([]string{"id", "", "Total Price"})
	require.Len(t, s, 3)
	assert.Equal(t, "id", s[0].Name)
	assert.Equal(t, "col_1", s[1].Name)
	assert.Equal(t, "TotalPrice", s[2].Name)
	assert.Equal(t, "BYTE_ARRAY", s[0].Type)
	assert.Equal(t, "UTF8", s[0].ConvertedType)
}

func TestRowFromCells(t *testing.T) {
	s := FromHeader([]string{"a", "b"})

	t.Run("null cells stay nil", func(t *testing.T) {
		row, err := s.RowFromCells([]string{"x", ""})
		require.NoError(t, err)
		require.NotNil(t, row[0])
		assert.Equal(t, "x", *row[0])
		assert.Nil(t, row[1])
	})

	t.Run("width mismatch errors", func(t *testing.T) {
		_, err := s.RowFromCells([]string{"x"})
		assert.Error(t, err)
	})
}
