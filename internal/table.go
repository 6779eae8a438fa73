package internal

// Table is an ordered header plus data rows decoded from one delimited
// file. Column order is critical for the serializers downstream, so
// both are kept as slices.
type Table struct {
	header []string
	rows   [][]string
}

func NewTable(header []string, rows [][]string) *Table {
	return &Table{
		header: header,
		rows:   rows,
	}
}

func (t *Table) Header() []string {
	return t.header
}

func (t *Table) Rows() [][]string {
	return t.rows
}

// Len is the number of data rows, excluding the header.
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) Width() int {
	return len(t.header)
}
