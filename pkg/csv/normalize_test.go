package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRow(t *testing.T) {
	t.Run("strips whitespace from every cell after the first", func(t *testing.T) {
		row := []string{" raw first ", " 1 234,56 ", "x\ty", "a b c"}
		assert.Equal(t, []string{" raw first ", "1234,56", "xy", "abc"}, NormalizeRow(row))
	})

	t.Run("removes narrow no-break space", func(t *testing.T) {
		row := []string{"id", "1\u202f234"}
		assert.Equal(t, []string{"id", "1234"}, NormalizeRow(row))
	})

	t.Run("never modifies column zero", func(t *testing.T) {
		row := []string{"   ", "   "}
		assert.Equal(t, []string{"   ", ""}, NormalizeRow(row))
	})

	t.Run("idempotent", func(t *testing.T) {
		row := []string{"first", " a ", "1 0"}
		once := NormalizeRow(row)
		assert.Equal(t, once, NormalizeRow(once))
	})

	t.Run("preserves length", func(t *testing.T) {
		row := []string{"a", "", " ", "b"}
		assert.Len(t, NormalizeRow(row), len(row))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		row := []string{"a", " b "}
		NormalizeRow(row)
		assert.Equal(t, []string{"a", " b "}, row)
	})
}
