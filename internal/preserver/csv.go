package preserver

import (
	"bytes"
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/internal"
	"github.com/turbolytics/scrivener/pkg/csv"
)

type CSVOption func(*CSV)

func CSVWithLogger(logger *zap.Logger) CSVOption {
	return func(c *CSV) {
		c.logger = logger
	}
}

func CSVWithRepository(repository internal.Repository) CSVOption {
	return func(c *CSV) {
		c.repository = repository
	}
}

// CSV re-encodes a cleaned table into the delimited output format
// (byte-order mark, semicolon cells, newline rows) and hands the bytes
// to the repository.
type CSV struct {
	logger     *zap.Logger
	repository internal.Repository
}

func NewCSV(opts ...CSVOption) (*CSV, error) {
	c := &CSV{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.repository == nil {
		return nil, errors.New("csv preserver requires a repository")
	}
	return c, nil
}

func (c *CSV) Preserve(ctx context.Context, key string, table *internal.Table) error {
	var buf bytes.Buffer
	if err := csv.EncodeRows(&buf, table.Header(), table.Rows()); err != nil {
		return err
	}

	c.logger.Debug("preserving csv file",
		zap.String("key", key),
		zap.Int("num_rows", table.Len()),
	)

	return c.repository.Write(ctx, key, &buf)
}
