// Loading the notes file into the query engine on Attach.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/noty/pkg/types"
)

// loadNotes inserts notes into the notes table in file order inside a single
// transaction: all rows load or the table stays empty.
func loadNotes(db *sql.DB, notes []types.Note) error {
	if len(notes) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertNotes(tx, notes); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertNotes appends notes to the notes table. seq is assigned by SQLite so
// rows keep their insertion order.
func insertNotes(tx *sql.Tx, notes []types.Note) error {
	stmt, err := tx.Prepare("INSERT INTO notes (id, text, timestamp) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range notes {
		if _, err := stmt.Exec(n.ID, n.Text, n.Timestamp); err != nil {
			return fmt.Errorf("inserting note %d: %w", n.ID, err)
		}
	}
	return nil
}
