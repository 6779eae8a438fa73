package csv

import (
	"strings"
	"unicode"
)

// NormalizeRow returns a row of equal length where every cell at index
// 1 and above has all whitespace removed. The first cell passes
// through untouched. Idempotent.
func NormalizeRow(row []string) []string {
	out := make([]string, len(row))
	copy(out, row)
	for i := 1; i < len(out); i++ {
		out[i] = normalizeCell(out[i])
	}
	return out
}

// normalizeCell strips every whitespace rune. unicode.IsSpace covers
// U+202F (narrow no-break space), which shows up in exports that
// group digits with it.
func normalizeCell(s string) string {
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
