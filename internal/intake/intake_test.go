package intake

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbolytics/scrivener/internal/catalog"
	"github.com/turbolytics/scrivener/internal/preserver"
	"github.com/turbolytics/scrivener/internal/repository"
)

func newTestIntake(t *testing.T, inbox string, out string, runID string, opts ...Option) *Intake {
	t.Helper()

	repo := repository.NewLocal(out, repository.LocalWithPrefix(runID))
	p, err := preserver.NewCSV(preserver.CSVWithRepository(repo))
	require.NoError(t, err)

	opts = append([]Option{
		WithName("test"),
		WithSourcePath(inbox),
		WithPreserver(p),
		WithRepository(repo),
	}, opts...)

	i, err := New(opts...)
	require.NoError(t, err)
	return i
}

func readCatalog(t *testing.T, path string) catalog.Catalog {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(data, &cat))
	return cat
}

func TestIntakeRun(t *testing.T) {
	t.Run("cleans and preserves a valid file", func(t *testing.T) {
		inbox := t.TempDir()
		out := t.TempDir()
		rid := uuid.Must(uuid.NewUUID())

		input := "Account;Amount;Note\nacct-1; 1 0,5 ;first\nacct-2;7; x \n"
		require.NoError(t, os.WriteFile(filepath.Join(inbox, "ledger.csv"), []byte(input), 0644))
		// Non-csv entries are skipped.
		require.NoError(t, os.WriteFile(filepath.Join(inbox, "notes.txt"), []byte("ignore"), 0644))

		i := newTestIntake(t, inbox, out, rid.String(),
			WithFirstColumnLabels([]string{"Account", "Konto"}),
		)

		cat, err := i.Run(context.Background(), rid)
		require.NoError(t, err)
		assert.True(t, cat.Success)
		assert.Equal(t, 2, cat.NumRows)
		require.Len(t, cat.Files, 1)
		assert.True(t, cat.Files[0].Preserved)

		cleaned, err := os.ReadFile(filepath.Join(out, rid.String(), "ledger.csv"))
		require.NoError(t, err)
		assert.Equal(t,
			"\ufeffAccount;Amount;Note\n"+
				"acct-1;10,5;first\n"+
				"acct-2;7;x\n",
			string(cleaned))

		onDisk := readCatalog(t, filepath.Join(out, rid.String(), "catalog.json"))
		assert.Equal(t, rid.String(), onDisk.RunID)
		assert.Equal(t, 2, onDisk.NumRows)
	})

	t.Run("validates the full header when configured", func(t *testing.T) {
		inbox := t.TempDir()
		out := t.TempDir()
		rid := uuid.Must(uuid.NewUUID())

		input := "id;amount\n1;10\n"
		require.NoError(t, os.WriteFile(filepath.Join(inbox, "ok.csv"), []byte(input), 0644))

		i := newTestIntake(t, inbox, out, rid.String(),
			WithExpectedHeader([]string{"id", "amount"}),
		)

		cat, err := i.Run(context.Background(), rid)
		require.NoError(t, err)
		assert.True(t, cat.Success)
		assert.Equal(t, 1, cat.NumRows)
	})

	t.Run("rejects a file with a mismatched header", func(t *testing.T) {
		inbox := t.TempDir()
		out := t.TempDir()
		rid := uuid.Must(uuid.NewUUID())

		input := "id;amount;extra\n1;10;x\n"
		require.NoError(t, os.WriteFile(filepath.Join(inbox, "bad.csv"), []byte(input), 0644))

		i := newTestIntake(t, inbox, out, rid.String(),
			WithExpectedHeader([]string{"id", "amount"}),
		)

		cat, err := i.Run(context.Background(), rid)
		require.NoError(t, err)
		assert.False(t, cat.Success)
		require.Len(t, cat.Files, 1)
		assert.False(t, cat.Files[0].Preserved)
		assert.NotEmpty(t, cat.Files[0].Error)

		// The original bytes are kept for the operator.
		rejected, err := os.ReadFile(filepath.Join(out, rid.String(), "rejected", "bad.csv"))
		require.NoError(t, err)
		assert.Equal(t, input, string(rejected))
	})

	t.Run("one bad file does not stop the run", func(t *testing.T) {
		inbox := t.TempDir()
		out := t.TempDir()
		rid := uuid.Must(uuid.NewUUID())

		require.NoError(t, os.WriteFile(filepath.Join(inbox, "a.csv"), []byte("Account;N\nx;1\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(inbox, "b.csv"), []byte("Wrong;N\nx;1\n"), 0644))

		i := newTestIntake(t, inbox, out, rid.String(),
			WithFirstColumnLabels([]string{"Account"}),
		)

		cat, err := i.Run(context.Background(), rid)
		require.NoError(t, err)
		assert.False(t, cat.Success)
		assert.Len(t, cat.Files, 2)
		assert.Equal(t, 1, cat.NumRows)
	})

	t.Run("single file source path", func(t *testing.T) {
		inbox := t.TempDir()
		out := t.TempDir()
		rid := uuid.Must(uuid.NewUUID())

		path := filepath.Join(inbox, "only.csv")
		require.NoError(t, os.WriteFile(path, []byte("Account;N\nx; 1 \n"), 0644))

		i := newTestIntake(t, path, out, rid.String(),
			WithFirstColumnLabels([]string{"Account"}),
		)

		cat, err := i.Run(context.Background(), rid)
		require.NoError(t, err)
		assert.True(t, cat.Success)
		assert.Equal(t, 1, cat.NumRows)
	})
}
