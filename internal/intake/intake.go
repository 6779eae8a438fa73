package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/internal"
	"github.com/turbolytics/scrivener/internal/catalog"
	"github.com/turbolytics/scrivener/pkg/csv"
)

type Option func(*Intake)

func WithLogger(logger *zap.Logger) Option {
	return func(i *Intake) {
		i.logger = logger
	}
}

func WithName(name string) Option {
	return func(i *Intake) {
		i.name = name
	}
}

func WithSourcePath(path string) Option {
	return func(i *Intake) {
		i.sourcePath = path
	}
}

// WithExpectedHeader enables the strict column-by-column header
// contract against incoming files.
func WithExpectedHeader(header []string) Option {
	return func(i *Intake) {
		i.expectedHeader = header
	}
}

// WithFirstColumnLabels enables the looser contract where only the
// header's first column must match one of the acceptable labels.
func WithFirstColumnLabels(labels []string) Option {
	return func(i *Intake) {
		i.labels = labels
	}
}

func WithPreserver(preserver internal.Preserver) Option {
	return func(i *Intake) {
		i.preserver = preserver
	}
}

func WithRepository(repository internal.Repository) Option {
	return func(i *Intake) {
		i.repository = repository
	}
}

// Intake walks a source path, validates and normalizes each delimited
// file, preserves the cleaned tables and writes a run catalog. Files
// failing validation are copied to rejected/ and reported in the
// catalog; they never stop the run.
type Intake struct {
	logger     *zap.Logger
	name       string
	sourcePath string

	expectedHeader []string
	labels         []string

	preserver  internal.Preserver
	repository internal.Repository
}

func New(opts ...Option) (*Intake, error) {
	i := &Intake{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.sourcePath == "" {
		return nil, fmt.Errorf("intake %q requires a source path", i.name)
	}
	if i.preserver == nil {
		return nil, fmt.Errorf("intake %q requires a preserver", i.name)
	}
	if i.repository == nil {
		return nil, fmt.Errorf("intake %q requires a repository", i.name)
	}
	return i, nil
}

// Run processes every file under the source path once.
func (i *Intake) Run(ctx context.Context, runID uuid.UUID) (*catalog.Catalog, error) {
	cat := &catalog.Catalog{
		RunID:     runID.String(),
		StartTime: time.Now().UTC(),
		Source:    i.sourcePath,
		Success:   true,
	}

	files, err := i.listFiles()
	if err != nil {
		return nil, err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		report := i.processFile(ctx, path)
		cat.Files = append(cat.Files, report)
		cat.NumRows += report.Rows
		if report.Error != "" {
			cat.Success = false
		}
	}

	cat.EndTime = time.Now().UTC()

	bs, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := i.repository.Write(ctx, "catalog.json", bytes.NewReader(bs)); err != nil {
		return nil, err
	}

	i.logger.Info("intake run finished",
		zap.String("run_id", cat.RunID),
		zap.Int("num_files", len(cat.Files)),
		zap.Int("num_rows", cat.NumRows),
		zap.Bool("success", cat.Success),
	)

	return cat, nil
}

func (i *Intake) listFiles() ([]string, error) {
	info, err := os.Stat(i.sourcePath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{i.sourcePath}, nil
	}

	entries, err := os.ReadDir(i.sourcePath)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".csv" {
			continue
		}
		files = append(files, filepath.Join(i.sourcePath, entry.Name()))
	}
	return files, nil
}

func (i *Intake) processFile(ctx context.Context, path string) catalog.File {
	name := filepath.Base(path)
	report := catalog.File{Name: name}

	bs, err := os.ReadFile(path)
	if err != nil {
		report.Error = err.Error()
		return report
	}

	table, err := i.decode(bs)
	if err != nil {
		i.logger.Warn("rejecting file",
			zap.String("file", name),
			zap.Error(err),
		)
		report.Error = err.Error()
		if werr := i.repository.Write(ctx, filepath.Join("rejected", name), bytes.NewReader(bs)); werr != nil {
			report.Error = fmt.Sprintf("%s (rejected copy failed: %s)", err, werr)
		}
		return report
	}

	report.Rows = table.Len()

	if err := i.preserver.Preserve(ctx, name, table); err != nil {
		report.Error = err.Error()
		return report
	}
	report.Preserved = true
	return report
}

// decode applies whichever header contract is configured, then reads
// the normalized data rows.
func (i *Intake) decode(bs []byte) (*internal.Table, error) {
	header, err := csv.ReadHeader(bytes.NewReader(bs))
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, &csv.HeaderMismatchError{Expected: i.expectedHeaderOrLabels()}
	}

	labels := i.labels
	if len(i.expectedHeader) > 0 {
		if err := csv.ValidateHeader(header, i.expectedHeader); err != nil {
			return nil, err
		}
		// Full equality already guarantees the first-column check;
		// the raw reader just needs a label to consume the header.
		labels = i.expectedHeader[:1]
	}
	if len(labels) == 0 {
		labels = header[:1]
	}

	rows, err := csv.ReadRows(bytes.NewReader(bs), labels, csv.WithLogger(i.logger))
	if err != nil {
		return nil, err
	}
	return internal.NewTable(header, rows), nil
}

func (i *Intake) expectedHeaderOrLabels() []string {
	if len(i.expectedHeader) > 0 {
		return i.expectedHeader
	}
	return i.labels
}
