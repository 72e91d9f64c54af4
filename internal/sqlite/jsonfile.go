// JSON notes file read/write helpers with atomic persistence.
package sqlite

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/noty/pkg/types"
)

// readNotesFile reads the notes file at path. A missing or blank file yields
// no notes. Content that is not a JSON array of notes returns an error
// wrapping types.ErrMalformedFile. Unknown fields in records are ignored.
func readNotesFile(path string) ([]types.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var notes []types.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrMalformedFile, path, err)
	}
	return notes, nil
}

// encodeNotes renders notes as an indented JSON array. An empty list encodes
// as [] rather than null.
func encodeNotes(notes []types.Note) ([]byte, error) {
	if notes == nil {
		notes = []types.Note{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeNotesFile atomically replaces the notes file using the temp-file,
// fsync, rename pattern. The parent directory is created when missing.
func writeNotesFile(path string, notes []types.Note) error {
	data, err := encodeNotes(notes)
	if err != nil {
		return fmt.Errorf("encoding notes: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating notes directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".noty-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing notes: %w", err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
