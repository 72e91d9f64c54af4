// Note operations for the SQLite backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/noty/pkg/types"
)

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// scanNotes returns every note in file order. The result is never nil.
func scanNotes(q querier) ([]types.Note, error) {
	rows, err := q.Query("SELECT id, text, timestamp FROM notes ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := []types.Note{}
	for rows.Next() {
		var n types.Note
		if err := rows.Scan(&n.ID, &n.Text, &n.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}

// mutate runs fn inside a transaction, rewrites the notes file from the
// transaction's view, then commits. If fn or the file write fails, the
// transaction rolls back and the file keeps its previous content.
// The caller must hold b.mu write lock.
func (b *Backend) mutate(op string, fn func(tx *sql.Tx) error) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	notes, err := scanNotes(tx)
	if err != nil {
		return err
	}
	if err := writeNotesFile(b.config.NotesFile, notes); err != nil {
		return fmt.Errorf("persisting notes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", op, err)
	}

	b.logger.Debug("persisted notes",
		zap.String("op", op),
		zap.String("path", b.config.NotesFile),
		zap.Int("count", len(notes)),
	)
	return nil
}

// Add appends a note with ID max(id)+1 (1 when empty) stamped with the
// current local time.
func (b *Backend) Add(text string) (types.Note, error) {
	if strings.TrimSpace(text) == "" {
		return types.Note{}, types.ErrEmptyText
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Note{}, types.ErrStoreDetached
	}

	var note types.Note
	err := b.mutate("add", func(tx *sql.Tx) error {
		var maxID sql.NullInt64
		if err := tx.QueryRow("SELECT MAX(id) FROM notes").Scan(&maxID); err != nil {
			return fmt.Errorf("reading max id: %w", err)
		}
		note = types.Note{
			ID:        1,
			Text:      text,
			Timestamp: types.FormatTimestamp(b.now()),
		}
		if maxID.Valid {
			note.ID = int(maxID.Int64) + 1
		}
		return insertNotes(tx, []types.Note{note})
	})
	if err != nil {
		return types.Note{}, err
	}

	b.logger.Debug("added note", zap.Int("id", note.ID))
	return note, nil
}

// Get returns the first note with the given ID.
func (b *Backend) Get(id int) (types.Note, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Note{}, types.ErrStoreDetached
	}

	var n types.Note
	err := b.db.QueryRow(
		"SELECT id, text, timestamp FROM notes WHERE id = ? ORDER BY seq LIMIT 1", id,
	).Scan(&n.ID, &n.Text, &n.Timestamp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Note{}, fmt.Errorf("%w with ID #%d", types.ErrNotFound, id)
		}
		return types.Note{}, fmt.Errorf("getting note %d: %w", id, err)
	}
	return n, nil
}

// List returns all notes in file order.
func (b *Backend) List() ([]types.Note, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	return scanNotes(b.db)
}

// Count returns the number of notes.
func (b *Backend) Count() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return 0, types.ErrStoreDetached
	}

	var n int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting notes: %w", err)
	}
	return n, nil
}

// Remove deletes the first note with the given ID. When no note matches, the
// notes file is not rewritten.
func (b *Backend) Remove(id int) (types.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Note{}, types.ErrStoreDetached
	}

	var removed types.Note
	err := b.mutate("remove", func(tx *sql.Tx) error {
		var seq int64
		err := tx.QueryRow(
			"SELECT seq, id, text, timestamp FROM notes WHERE id = ? ORDER BY seq LIMIT 1", id,
		).Scan(&seq, &removed.ID, &removed.Text, &removed.Timestamp)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("%w with ID #%d", types.ErrNotFound, id)
			}
			return fmt.Errorf("finding note %d: %w", id, err)
		}
		if _, err := tx.Exec("DELETE FROM notes WHERE seq = ?", seq); err != nil {
			return fmt.Errorf("deleting note %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return types.Note{}, err
	}

	b.logger.Debug("removed note", zap.Int("id", id))
	return removed, nil
}

// Clear removes every note and returns how many were removed.
func (b *Backend) Clear() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0, types.ErrStoreDetached
	}

	var removed int64
	err := b.mutate("clear", func(tx *sql.Tx) error {
		res, err := tx.Exec("DELETE FROM notes")
		if err != nil {
			return fmt.Errorf("deleting notes: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}
	return int(removed), nil
}

// Renumber reassigns IDs 1..n in file order and returns n.
func (b *Backend) Renumber() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return 0, types.ErrStoreDetached
	}

	var n int
	err := b.mutate("renumber", func(tx *sql.Tx) error {
		seqs, err := orderedSeqs(tx)
		if err != nil {
			return err
		}
		stmt, err := tx.Prepare("UPDATE notes SET id = ? WHERE seq = ?")
		if err != nil {
			return fmt.Errorf("preparing renumber: %w", err)
		}
		defer stmt.Close()

		for i, seq := range seqs {
			if _, err := stmt.Exec(i+1, seq); err != nil {
				return fmt.Errorf("renumbering note at position %d: %w", i+1, err)
			}
		}
		n = len(seqs)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Flush rewrites the notes file from the current contents.
func (b *Backend) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	return b.mutate("flush", func(*sql.Tx) error { return nil })
}

// orderedSeqs returns every row's seq in file order. Rows are drained before
// returning so the caller can issue updates on the same transaction.
func orderedSeqs(tx *sql.Tx) ([]int64, error) {
	rows, err := tx.Query("SELECT seq FROM notes ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("querying positions: %w", err)
	}
	defer rows.Close()

	var seqs []int64
	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, fmt.Errorf("scanning position: %w", err)
		}
		seqs = append(seqs, seq)
	}
	return seqs, rows.Err()
}
