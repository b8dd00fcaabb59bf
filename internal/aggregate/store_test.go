package aggregate

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/jovalie/political-forecast/internal/config"
	"github.com/jovalie/political-forecast/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "trending.json")
	store, err := NewFileStore(path, testLogger)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	agg := types.AggregateFile{
		Timestamp: testTime,
		States: []types.StateRecord{
			{Name: "California", Code: "CA", TopTopic: "Election Reform", TrendingScore: 90, Timestamp: testTime},
		},
	}
	if err := store.Save(ctx, agg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.States) != 1 || loaded.States[0].TopTopic != "Election Reform" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}

	// No temp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file should not remain after save")
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trending.json")
	store, err := NewFileStore(path, testLogger)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must load as empty, got error: %v", err)
	}
	if len(loaded.States) != 0 {
		t.Errorf("expected empty aggregate, got %d states", len(loaded.States))
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trending.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := NewFileStore(path, testLogger)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("corrupt file must degrade to empty, got error: %v", err)
	}
	if len(loaded.States) != 0 {
		t.Errorf("expected empty aggregate from corrupt file, got %+v", loaded)
	}

	// A subsequent save rebuilds the store.
	agg := types.AggregateFile{Timestamp: testTime, States: []types.StateRecord{{Name: "Texas", Code: "TX"}}}
	if err := store.Save(context.Background(), agg); err != nil {
		t.Fatalf("save after corruption: %v", err)
	}
	reloaded, err := store.Load(context.Background())
	if err != nil || len(reloaded.States) != 1 {
		t.Errorf("expected rebuilt store with 1 state, got %+v (err %v)", reloaded, err)
	}
}

func TestNewStoreUnsupportedType(t *testing.T) {
	_, err := NewStore(config.StorageConfig{Type: "redis"}, testLogger)
	if err == nil {
		t.Fatal("expected error for unsupported storage type")
	}
}
