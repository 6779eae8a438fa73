package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/turbolytics/scrivener/internal/parquet"
)

type Logger struct {
	Level string `yaml:"level"`
}

type Global struct {
	Logger Logger `yaml:"logger"`
}

type Source struct {
	// Path is a single file or a directory of .csv files.
	Path string `yaml:"path"`

	// ExpectedHeader enables the strict column-by-column contract.
	ExpectedHeader []string `yaml:"expected_header"`

	// FirstColumnLabels enables the first-column membership contract.
	FirstColumnLabels []string `yaml:"first_column_labels"`
}

type LocalRepository struct {
	Path string `yaml:"path"`
}

type S3Repository struct {
	Bucket         string `yaml:"bucket"`
	Region         string `yaml:"region"`
	Prefix         string `yaml:"prefix"`
	Endpoint       string `yaml:"endpoint"`
	ForcePathStyle bool   `yaml:"force_path_style"`
}

type Repository struct {
	Type  string          `yaml:"type"`
	Local LocalRepository `yaml:"local"`
	S3    S3Repository    `yaml:"s3"`
}

type ParquetField struct {
	Name           string `yaml:"name"`
	Type           string `yaml:"type"`
	ConvertedType  string `yaml:"converted_type"`
	RepetitionType string `yaml:"repetition_type"`
}

type Parquet struct {
	Schema []ParquetField `yaml:"schema"`
}

type Preserver struct {
	Type    string  `yaml:"type"`
	Parquet Parquet `yaml:"parquet"`
}

type Intake struct {
	Name       string     `yaml:"name"`
	Source     Source     `yaml:"source"`
	Repository Repository `yaml:"repository"`
	Preserver  Preserver  `yaml:"preserver"`
}

type Scrivener struct {
	Global Global `yaml:"global"`
	Intake Intake `yaml:"intake"`
}

func NewScrivenerFromFile(fpath string) (*Scrivener, error) {
	bs, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	var scrivener Scrivener
	if err := yaml.Unmarshal(bs, &scrivener); err != nil {
		return nil, err
	}

	return &scrivener, nil
}

// ParquetFields maps config schema entries onto the parquet schema.
func ParquetFields(fields []ParquetField) parquet.Schema {
	s := make(parquet.Schema, len(fields))
	for i, f := range fields {
		s[i] = parquet.Field{
			Name:           f.Name,
			Type:           f.Type,
			ConvertedType:  f.ConvertedType,
			RepetitionType: f.RepetitionType,
		}
	}
	return s
}
