// Package sqlite provides the public API for the SQLite-backed note store.
// This package exposes the factory function while keeping implementation
// details internal.
package sqlite

import (
	"github.com/mesh-intelligence/noty/internal/sqlite"
	"github.com/mesh-intelligence/noty/pkg/types"
)

// Option configures a backend created by NewBackend.
type Option = sqlite.Option

// WithLogger and WithClock re-export the backend options.
var (
	WithLogger = sqlite.WithLogger
	WithClock  = sqlite.WithClock
)

// NewBackend creates a new note store instance.
// The store is not attached; call Attach with a Config to load a notes file.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{NotesFile: "/home/me/.noty_notes.json"})
//	defer store.Detach()
func NewBackend(opts ...Option) types.NoteStore {
	return sqlite.NewBackend(opts...)
}
