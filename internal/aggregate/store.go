package aggregate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/jovalie/political-forecast/internal/config"
	"github.com/jovalie/political-forecast/internal/types"
)

// Store is the interface for aggregate-file persistence backends.
type Store interface {
	// Load reads the prior aggregate state. A missing store is not an
	// error; it loads as an empty aggregate.
	Load(ctx context.Context) (types.AggregateFile, error)

	// Save persists the full aggregate state.
	Save(ctx context.Context, agg types.AggregateFile) error

	// Close releases backend resources.
	Close() error

	// Name returns the storage backend identifier.
	Name() string
}

// NewStore creates the configured storage backend.
func NewStore(cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Type {
	case "file":
		return NewFileStore(cfg.Path, logger)
	case "mongo":
		return NewMongoStore(cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}

// FileStore persists the aggregate as a single JSON document on disk.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewFileStore creates a JSON file storage backend.
func NewFileStore(path string, logger *slog.Logger) (*FileStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &types.StoreError{Backend: "file", Err: fmt.Errorf("create store dir: %w", err)}
	}

	return &FileStore{
		path:   path,
		logger: logger.With("component", "file_store"),
	}, nil
}

func (s *FileStore) Name() string { return "file" }

// Load reads the aggregate file. A corrupt file degrades to an empty
// aggregate with a warning rather than aborting the run, so a damaged
// store is rebuilt on the next successful save.
func (s *FileStore) Load(ctx context.Context) (types.AggregateFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no prior aggregate", "path", s.path)
		return types.AggregateFile{}, nil
	}
	if err != nil {
		return types.AggregateFile{}, &types.StoreError{Backend: "file", Err: err}
	}

	var agg types.AggregateFile
	if err := json.Unmarshal(data, &agg); err != nil {
		s.logger.Warn("aggregate file unreadable, starting empty",
			"path", s.path, "error", errors.Join(types.ErrStoreCorrupt, err))
		return types.AggregateFile{}, nil
	}

	s.logger.Debug("aggregate loaded", "path", s.path, "states", len(agg.States))
	return agg, nil
}

// Save writes the aggregate atomically via a temp file and rename, so a
// crash mid-write never leaves a half-written store behind.
func (s *FileStore) Save(ctx context.Context, agg types.AggregateFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		return &types.StoreError{Backend: "file", Err: fmt.Errorf("encode aggregate: %w", err)}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &types.StoreError{Backend: "file", Err: fmt.Errorf("write temp file: %w", err)}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return &types.StoreError{Backend: "file", Err: fmt.Errorf("replace aggregate file: %w", err)}
	}

	s.logger.Info("aggregate written", "path", s.path, "states", len(agg.States))
	return nil
}

func (s *FileStore) Close() error { return nil }
