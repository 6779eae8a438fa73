// Package csv decodes and encodes semicolon-delimited, unquoted text.
//
// The format is deliberately narrow: UTF-8 rows separated by newlines,
// cells separated by a single delimiter, no quote or escape processing.
// Consecutive delimiters mark a null cell, not an empty string. Encoded
// output starts with a UTF-8 byte-order mark so spreadsheet tools pick
// the right charset.
//
// Typed decoding and encoding are driven by a Schema: a per-record-type
// table of field descriptors carrying an optional column position, an
// optional header label, and accessor/mutator bindings. No reflection
// is involved.
package csv

import "go.uber.org/zap"

// Delimiter is the default cell separator.
const Delimiter = ';'

const (
	bom            = "\ufeff"
	lineTerminator = "\n"
)

type options struct {
	delimiter rune
	logger    *zap.Logger
}

type Option func(*options)

// WithDelimiter overrides the default semicolon cell separator.
func WithDelimiter(d rune) Option {
	return func(o *options) {
		o.delimiter = d
	}
}

// WithLogger attaches a logger for row-skip and header diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) options {
	o := options{
		delimiter: Delimiter,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
