package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the human-readable local time format stored with each note.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is a single timestamped text record. The JSON and YAML keys match the
// on-disk notes file.
type Note struct {
	ID        int    `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// UnmarshalJSON decodes a note record. The ID may be written as a
// whole-number float such as 1.0; a fractional or non-numeric ID is an error.
func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	var raw struct {
		plain
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}
	*n = Note(raw.plain)
	n.ID = id
	return nil
}

func decodeID(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	if raw[0] == '"' {
		return 0, fmt.Errorf("note id %s is not a number", raw)
	}
	if id, err := strconv.ParseInt(string(raw), 10, 0); err == nil {
		return int(id), nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("note id %s is not a whole number", raw)
	}
	return int(f), nil
}

// FormatTimestamp renders t in TimestampLayout using t's location.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// ParseID converts a command-line operand into a note ID.
// Returns an error wrapping ErrInvalidID when s is not an integer.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("'%s' is %w", s, ErrInvalidID)
	}
	return id, nil
}

// HasDuplicateIDs reports whether any ID appears more than once.
func HasDuplicateIDs(notes []Note) bool {
	seen := make(map[int]bool, len(notes))
	for _, n := range notes {
		if seen[n.ID] {
			return true
		}
		seen[n.ID] = true
	}
	return false
}
