package config

import (
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/turbolytics/scrivener/internal"
	"github.com/turbolytics/scrivener/internal/intake"
	"github.com/turbolytics/scrivener/internal/parquet"
	"github.com/turbolytics/scrivener/internal/preserver"
	"github.com/turbolytics/scrivener/internal/repository"
)

// InitializeIntake wires the configured repository and preserver into
// an intake service. The run ID namespaces every artifact the run
// writes.
func InitializeIntake(c *Scrivener, logger *zap.Logger, runID string) (*intake.Intake, error) {
	var repo internal.Repository
	switch c.Intake.Repository.Type {
	case "local":
		repo = repository.NewLocal(
			c.Intake.Repository.Local.Path,
			repository.LocalWithPrefix(runID),
			repository.LocalWithLogger(logger),
		)
	case "s3":
		repo = repository.NewS3(
			repository.S3WithLogger(logger),
			repository.S3WithRegion(c.Intake.Repository.S3.Region),
			repository.S3WithBucket(c.Intake.Repository.S3.Bucket),
			repository.S3WithEndpoint(c.Intake.Repository.S3.Endpoint),
			repository.S3WithForcePathStyle(c.Intake.Repository.S3.ForcePathStyle),
			repository.S3WithPrefix(
				path.Join(c.Intake.Repository.S3.Prefix, runID),
			),
		)
	default:
		return nil, fmt.Errorf("unknown repository type: %s", c.Intake.Repository.Type)
	}

	var p internal.Preserver
	var err error
	switch c.Intake.Preserver.Type {
	case "", "csv":
		p, err = preserver.NewCSV(
			preserver.CSVWithLogger(logger),
			preserver.CSVWithRepository(repo),
		)
	case "parquet":
		p, err = parquet.New(
			parquet.WithLogger(logger),
			parquet.WithSchema(ParquetFields(c.Intake.Preserver.Parquet.Schema)),
			parquet.WithRepository(repo),
		)
	case "stdout":
		p = &preserver.Stdout{}
	default:
		return nil, fmt.Errorf("unknown preserver type: %s", c.Intake.Preserver.Type)
	}
	if err != nil {
		return nil, err
	}

	return intake.New(
		intake.WithLogger(logger),
		intake.WithName(c.Intake.Name),
		intake.WithSourcePath(c.Intake.Source.Path),
		intake.WithExpectedHeader(c.Intake.Source.ExpectedHeader),
		intake.WithFirstColumnLabels(c.Intake.Source.FirstColumnLabels),
		intake.WithPreserver(p),
		intake.WithRepository(repo),
	)
}
