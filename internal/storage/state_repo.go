package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MainSlot is the single storage slot; there is exactly one app state per
// database file.
const MainSlot = "main"

type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load reads the persisted document. A missing slot is not an error: it
// returns (0, nil, nil) so the caller can start fresh.
func (r *StateRepo) Load(ctx context.Context) (int, []byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT version, payload FROM app_state WHERE slot = ?`, MainSlot)

	var version int
	var payload []byte
	if err := row.Scan(&version, &payload); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil, nil
		}
		return 0, nil, fmt.Errorf("state load: %w", err)
	}
	return version, payload, nil
}

// Save overwrites the whole document in place.
func (r *StateRepo) Save(ctx context.Context, version int, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_state (slot, version, payload, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET version = excluded.version, payload = excluded.payload, updated_at = excluded.updated_at
	`, MainSlot, version, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("state save: %w", err)
	}
	return nil
}
