package internal

import (
	"context"
	"io"
)

// Repository is a sink for intake artifacts: cleaned output files,
// failed-row sidecars and run catalogs.
type Repository interface {
	Write(ctx context.Context, key string, reader io.Reader) error
}

// Preserver serializes a decoded table and hands it to a repository.
type Preserver interface {
	Preserve(ctx context.Context, key string, table *Table) error
}
