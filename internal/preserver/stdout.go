package preserver

import (
	"context"
	"fmt"
	"os"

	"github.com/turbolytics/scrivener/internal"
	"github.com/turbolytics/scrivener/pkg/csv"
)

// Stdout prints the cleaned table instead of persisting it. Used by
// dry runs.
type Stdout struct{}

func (s *Stdout) Preserve(ctx context.Context, key string, table *internal.Table) error {
	fmt.Printf("--- %s ---\n", key)
	return csv.EncodeRows(os.Stdout, table.Header(), table.Rows())
}
