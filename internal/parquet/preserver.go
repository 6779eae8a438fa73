package parquet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/writer"
	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/internal"
)

type Option func(*Preserver)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Preserver) {
		p.logger = logger
	}
}

func WithSchema(schema Schema) Option {
	return func(p *Preserver) {
		p.schema = schema
	}
}

func WithRepository(repository internal.Repository) Option {
	return func(p *Preserver) {
		p.repository = repository
	}
}

// Preserver writes decoded tables as parquet files. The schema comes
// from config; when absent it is derived from the table header as
// all-string columns.
type Preserver struct {
	logger     *zap.Logger
	schema     Schema
	repository internal.Repository
}

func New(opts ...Option) (*Preserver, error) {
	p := &Preserver{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.repository == nil {
		return nil, errors.New("parquet preserver requires a repository")
	}
	return p, nil
}

func (p *Preserver) Preserve(ctx context.Context, key string, table *internal.Table) error {
	schema := p.schema
	if len(schema) == 0 {
		schema = FromHeader(table.Header())
	}
	if len(schema) != table.Width() {
		return fmt.Errorf(
			"schema and table width mismatch: schema has %d columns, table has %d",
			len(schema),
			table.Width(),
		)
	}

	pf := buffer.NewBufferFile()
	pw, err := writer.NewCSVWriter(schema.ToCSVWriterSchema(), pf, 1)
	if err != nil {
		return err
	}

	for _, row := range table.Rows() {
		rec, err := schema.RowFromCells(row)
		if err != nil {
			return err
		}
		if err := pw.WriteString(rec); err != nil {
			return err
		}
	}

	if err := pw.WriteStop(); err != nil {
		return err
	}
	if err := pf.Close(); err != nil {
		return err
	}

	key = strings.TrimSuffix(key, ".csv") + ".parquet"
	p.logger.Debug("preserving parquet file",
		zap.String("key", key),
		zap.Int("num_rows", table.Len()),
	)

	return p.repository.Write(ctx, key, bytes.NewReader(pf.Bytes()))
}
