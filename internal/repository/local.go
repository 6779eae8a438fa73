package repository

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

type LocalOption func(*Local)

func LocalWithPrefix(prefix string) LocalOption {
	return func(l *Local) {
		l.prefix = prefix
	}
}

func LocalWithLogger(logger *zap.Logger) LocalOption {
	return func(l *Local) {
		l.logger = logger
	}
}

// Local writes artifacts under a base directory, namespaced by the run
// prefix.
type Local struct {
	basePath string
	prefix   string
	logger   *zap.Logger
}

func NewLocal(basePath string, opts ...LocalOption) *Local {
	l := &Local{
		basePath: basePath,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Local) Write(ctx context.Context, key string, reader io.Reader) error {
	fullPath := filepath.Join(
		l.basePath,
		l.prefix,
		key,
	)
	l.logger.Info("writing file", zap.String("path", fullPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, reader)
	return err
}
