package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/noty/pkg/types"
)

// Compile-time interface check: Backend must implement NoteStore.
var _ types.NoteStore = (*Backend)(nil)

// Backend implements NoteStore using SQLite as the query engine and the JSON
// notes file as the source of truth. Every mutation runs in a transaction that
// commits only after the rewritten file is in place.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for debug tracing. The default discards.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Backend) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp new notes.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBackend creates a new backend instance.
// The backend is not attached; call Attach with a Config to load a notes file.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Attach opens the in-memory query engine and loads the notes file.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	notes, err := readNotesFile(config.NotesFile)
	if err != nil {
		return err
	}

	// Every connection to :memory: is a separate database, so pin the pool
	// to a single long-lived connection.
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("opening query engine: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := loadNotes(db, notes); err != nil {
		db.Close()
		return fmt.Errorf("load notes: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.logger.Debug("attached note store",
		zap.String("path", config.NotesFile),
		zap.Int("count", len(notes)),
	)
	return nil
}

// Detach releases the query engine. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.logger.Debug("detached note store", zap.String("path", b.config.NotesFile))
	return nil
}
