package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/noty/pkg/types"
)

func TestReadNotesFile(t *testing.T) {
	tests := []struct {
		name      string
		content   *string
		want      []types.Note
		malformed bool
	}{
		{name: "missing file", content: nil, want: nil},
		{name: "empty file", content: ptr(""), want: nil},
		{name: "whitespace only", content: ptr("  \n"), want: nil},
		{name: "empty array", content: ptr("[]"), want: []types.Note{}},
		{
			name:    "records in order",
			content: ptr(`[{"id": 2, "text": "b", "timestamp": "t2"}, {"id": 1, "text": "a", "timestamp": "t1"}]`),
			want:    []types.Note{{ID: 2, Text: "b", Timestamp: "t2"}, {ID: 1, Text: "a", Timestamp: "t1"}},
		},
		{
			name:    "unknown fields ignored",
			content: ptr(`[{"id": 1, "text": "a", "timestamp": "t", "tags": ["x"]}]`),
			want:    []types.Note{{ID: 1, Text: "a", Timestamp: "t"}},
		},
		{
			name:    "missing fields take zero values",
			content: ptr(`[{"text": "a"}]`),
			want:    []types.Note{{Text: "a"}},
		},
		{name: "truncated json", content: ptr(`[{"id": 1`), malformed: true},
		{name: "object instead of array", content: ptr(`{"id": 1}`), malformed: true},
		{
			name:    "whole float ids from hand edits",
			content: ptr(`[{"id": 1.0, "text": "a"}, {"id": 2.0, "text": "b"}]`),
			want:    []types.Note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}},
		},
		{name: "string id", content: ptr(`[{"id": "1"}]`), malformed: true},
		{name: "fractional id", content: ptr(`[{"id": 1.5}]`), malformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "notes.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			got, err := readNotesFile(path)
			if tt.malformed {
				assert.ErrorIs(t, err, types.ErrMalformedFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteNotesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "notes.json")
	notes := []types.Note{{ID: 1, Text: "a", Timestamp: "2025-01-02 15:04:05"}}

	require.NoError(t, writeNotesFile(path, notes))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "[\n  {\n    \"id\": 1,\n    \"text\": \"a\",\n    \"timestamp\": \"2025-01-02 15:04:05\"\n  }\n]\n"
	assert.Equal(t, want, string(raw))

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteNotesFile_NilWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, writeNotesFile(path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func ptr(s string) *string { return &s }
