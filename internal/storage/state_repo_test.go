package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *StateRepo {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStateRepo(db)
}

func TestStateRepoEmptyLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	version, payload, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if version != 0 || payload != nil {
		t.Fatalf("empty load: version=%d payload=%q, want 0/nil", version, payload)
	}
}

func TestStateRepoSaveOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, 1, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	version, payload, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if version != 1 || !bytes.Equal(payload, []byte(`{"a":1}`)) {
		t.Fatalf("load: version=%d payload=%s", version, payload)
	}

	if err := repo.Save(ctx, 2, []byte(`{"b":2}`)); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	version, payload, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if version != 2 || !bytes.Equal(payload, []byte(`{"b":2}`)) {
		t.Fatalf("overwrite: version=%d payload=%s", version, payload)
	}
}
