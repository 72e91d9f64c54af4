package types

import "errors"

// NoteStore defines the interface for the notes file. Callers attach to a
// file, run operations, and detach when done. Every mutating operation
// rewrites the whole file before returning.
type NoteStore interface {
	// Attach loads the notes file described by config. A missing or empty
	// file yields an empty store. Returns ErrAlreadyAttached if called while
	// attached, and an error wrapping ErrMalformedFile if the file is not a
	// JSON array of notes.
	Attach(config Config) error

	// Detach releases resources. Idempotent. After Detach, operations
	// return ErrStoreDetached.
	Detach() error

	// Add appends a note with the next ID and the current local time.
	// Returns ErrEmptyText when text is blank.
	Add(text string) (Note, error)

	// Get returns the first note with the given ID, or ErrNotFound.
	Get(id int) (Note, error)

	// List returns all notes in file order.
	List() ([]Note, error)

	// Remove deletes the first note with the given ID and returns it.
	// Returns ErrNotFound and leaves the file untouched if none matches.
	Remove(id int) (Note, error)

	// Clear removes every note and returns how many were removed.
	Clear() (int, error)

	// Renumber reassigns IDs 1..n in file order and returns n.
	Renumber() (int, error)

	// Count returns the number of notes.
	Count() (int, error)

	// Flush rewrites the notes file from the current contents, creating it
	// if it does not exist.
	Flush() error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("note store is detached")
	ErrAlreadyAttached = errors.New("note store is already attached")
	ErrMalformedFile   = errors.New("notes file is not valid JSON")
)

// Note operation errors.
var (
	ErrNotFound  = errors.New("no note found")
	ErrInvalidID = errors.New("not a valid ID number")
	ErrEmptyText = errors.New("please provide text to add")
)
