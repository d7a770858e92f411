package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound = errors.New("storage: not found")
	ErrPersist  = errors.New("storage: persist failed")
)

// Backend is a flat key-value store with one string payload per key.
type Backend interface {
	Read(ctx context.Context, key string) (string, error)
	Write(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type BackendKind string

const (
	BackendSQLite BackendKind = "sqlite"
	BackendFile   BackendKind = "file"
	BackendMemory BackendKind = "memory"
)

func (k BackendKind) IsValid() bool {
	switch k {
	case BackendSQLite, BackendFile, BackendMemory:
		return true
	default:
		return false
	}
}

// OpenBackend opens the backend of the given kind. For sqlite, path is the
// database file; for file, the slot directory. Memory ignores path.
func OpenBackend(kind BackendKind, path string) (Backend, error) {
	switch kind {
	case BackendSQLite:
		if err := ensureDirForSQLite(path); err != nil {
			return nil, err
		}
		repo, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		if err := MigrateUp(repo.db); err != nil {
			_ = repo.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return repo, nil
	case BackendFile:
		return NewFileBackend(path)
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", kind)
	}
}

// CloseBackend closes b when it holds resources.
func CloseBackend(b Backend) error {
	if c, ok := b.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	return nil
}
