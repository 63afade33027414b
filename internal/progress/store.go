package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"starbank/internal/storage"
)

// StateVersion is the current persisted-document schema version.
const StateVersion = 2

// persistedDocument is the shape of the single storage slot:
// a version tag plus the whole AppState.
type persistedDocument struct {
	Version int      `json:"version"`
	State   AppState `json:"state"`
}

// Store owns the in-memory AppState and serializes it wholesale back to the
// storage slot after every mutation. There is exactly one logical writer; no
// locking is needed.
type Store struct {
	states *storage.StateRepo
	state  *AppState

	now      func() time.Time
	log      *zap.Logger
	onUnlock func(Achievement)
}

type Option func(*Store)

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the wall clock; tests use it to pin "today".
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open loads the persisted state from db (creating a fresh one on first run)
// and migrates older document versions forward.
func Open(ctx context.Context, db *sql.DB, opts ...Option) (*Store, error) {
	s := &Store{
		states: storage.NewStateRepo(db),
		now:    func() time.Time { return time.Now().UTC() },
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	version, payload, err := s.states.Load(ctx)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		s.state = newAppState()
		s.log.Debug("initialized fresh state")
		if err := s.save(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}

	var doc persistedDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode state document: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = version
	}
	s.state = &doc.State
	if doc.Version < StateVersion {
		s.log.Debug("migrating state document", zap.Int("from", doc.Version), zap.Int("to", StateVersion))
		migrateState(s.state, doc.Version)
		if err := s.save(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetUnlockListener registers the achievement-unlock notification channel.
// The listener is invoked once per unlock transition, never for re-checks.
func (s *Store) SetUnlockListener(fn func(Achievement)) {
	s.onUnlock = fn
}

func (s *Store) save(ctx context.Context) error {
	payload, err := json.Marshal(persistedDocument{Version: StateVersion, State: *s.state})
	if err != nil {
		return fmt.Errorf("encode state document: %w", err)
	}
	return s.states.Save(ctx, StateVersion, payload)
}

func (s *Store) today() string {
	return dayOf(s.now())
}

// recordFor returns a pointer into the records slice, or nil.
func (s *Store) recordFor(date string) *DailyRecord {
	for i := range s.state.DailyRecords {
		if s.state.DailyRecords[i].Date == date {
			return &s.state.DailyRecords[i]
		}
	}
	return nil
}

// ensureToday creates today's record lazily on first use.
func (s *Store) ensureToday() *DailyRecord {
	today := s.today()
	if rec := s.recordFor(today); rec != nil {
		return rec
	}
	s.state.DailyRecords = append(s.state.DailyRecords, DailyRecord{Date: today})
	return &s.state.DailyRecords[len(s.state.DailyRecords)-1]
}

func (s *Store) notify(unlocked []Achievement) {
	if s.onUnlock == nil {
		return
	}
	for _, a := range unlocked {
		s.onUnlock(a)
	}
}

func newAppState() *AppState {
	return &AppState{Achievements: achievementCatalog()}
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}
