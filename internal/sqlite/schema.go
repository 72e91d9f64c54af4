// Package sqlite implements the note store on an in-memory SQLite query
// engine with the JSON notes file as the source of truth.
package sqlite

// Schema DDL. seq preserves file order; id is not unique because a notes
// file edited by hand can carry duplicates until Renumber repairs them.
const (
	createNotes = `CREATE TABLE notes (
    seq INTEGER PRIMARY KEY,
    id INTEGER NOT NULL,
    text TEXT NOT NULL,
    timestamp TEXT NOT NULL
);`

	idxNotesID = `CREATE INDEX idx_notes_id ON notes(id);`
)

// schemaDDL lists the statements executed on Attach, in order.
var schemaDDL = []string{
	createNotes,
	idxNotesID,
}
