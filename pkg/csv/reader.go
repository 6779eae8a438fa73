package csv

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes caps a single row. The scanner's default token limit
// is too small for wide rows with large field values.
const maxLineBytes = 1 << 20

// reader walks a delimited byte stream row by row. No quote or escape
// processing: a row is the line split on the delimiter.
type reader struct {
	sc    *bufio.Scanner
	delim string
	first bool
}

func newReader(r io.Reader, delim rune) *reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	return &reader{
		sc:    sc,
		delim: string(delim),
		first: true,
	}
}

// next returns the next row, or false at end of input. The byte-order
// mark, if present, is stripped from the first line.
func (r *reader) next() ([]string, bool) {
	if !r.sc.Scan() {
		return nil, false
	}
	line := r.sc.Text()
	if r.first {
		line = strings.TrimPrefix(line, bom)
		r.first = false
	}
	return strings.Split(line, r.delim), true
}

// err reports why next stopped: nil at end of input, otherwise the
// underlying read failure or an over-limit line. Callers must check it
// once next returns false.
func (r *reader) err() error {
	return r.sc.Err()
}
