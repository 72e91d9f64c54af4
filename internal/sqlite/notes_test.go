package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/noty/pkg/types"
)

var fixedNow = time.Date(2025, 1, 2, 15, 4, 5, 0, time.Local)

// attachTemp attaches a backend to notes.json in a temp dir, seeding it
// with seed when non-nil.
func attachTemp(t *testing.T, seed []types.Note) (*Backend, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.json")
	if seed != nil {
		data, err := json.Marshal(seed)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}

	b := NewBackend(WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, b.Attach(types.Config{NotesFile: path}))
	t.Cleanup(func() { b.Detach() })
	return b, path
}

// readBack decodes the notes file at path.
func readBack(t *testing.T, path string) []types.Note {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var notes []types.Note
	require.NoError(t, json.Unmarshal(data, &notes))
	return notes
}

func TestAdd(t *testing.T) {
	b, path := attachTemp(t, nil)

	first, err := b.Add("buy milk")
	require.NoError(t, err)
	assert.Equal(t, types.Note{ID: 1, Text: "buy milk", Timestamp: "2025-01-02 15:04:05"}, first)

	second, err := b.Add("call mom")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	want := []types.Note{first, second}
	if diff := cmp.Diff(want, readBack(t, path)); diff != "" {
		t.Errorf("notes file mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_IncreasesCountByOne(t *testing.T) {
	b, _ := attachTemp(t, []types.Note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}})

	before, err := b.Count()
	require.NoError(t, err)

	_, err = b.Add("c")
	require.NoError(t, err)

	after, err := b.Count()
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}

func TestAdd_NextIDFromMax(t *testing.T) {
	b, _ := attachTemp(t, []types.Note{{ID: 3}, {ID: 9}, {ID: 4}})

	n, err := b.Add("next")
	require.NoError(t, err)
	assert.Equal(t, 10, n.ID)
}

func TestAdd_EmptyText(t *testing.T) {
	b, path := attachTemp(t, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := b.Add(text)
		assert.ErrorIs(t, err, types.ErrEmptyText)
	}
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file written for rejected add")
}

func TestAdd_PreservesSpecialCharacters(t *testing.T) {
	b, path := attachTemp(t, nil)

	text := "line one\nline <two> & \"three\" ✓"
	_, err := b.Add(text)
	require.NoError(t, err)

	notes := readBack(t, path)
	require.Len(t, notes, 1)
	assert.Equal(t, text, notes[0].Text)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<two> & ")
}

func TestGet(t *testing.T) {
	b, _ := attachTemp(t, []types.Note{{ID: 1, Text: "a"}, {ID: 2, Text: "b"}})

	n, err := b.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "b", n.Text)

	_, err = b.Get(5)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestList_FileOrder(t *testing.T) {
	seed := []types.Note{
		{ID: 5, Text: "e", Timestamp: "t5"},
		{ID: 1, Text: "a", Timestamp: "t1"},
		{ID: 3, Text: "c", Timestamp: "t3"},
	}
	b, _ := attachTemp(t, seed)

	got, err := b.List()
	require.NoError(t, err)
	if diff := cmp.Diff(seed, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestList_Empty(t *testing.T) {
	b, _ := attachTemp(t, nil)

	got, err := b.List()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRemove(t *testing.T) {
	b, path := attachTemp(t, []types.Note{
		{ID: 1, Text: "a"},
		{ID: 2, Text: "b"},
		{ID: 3, Text: "c"},
	})

	removed, err := b.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, "b", removed.Text)

	want := []types.Note{{ID: 1, Text: "a"}, {ID: 3, Text: "c"}}
	if diff := cmp.Diff(want, readBack(t, path)); diff != "" {
		t.Errorf("notes file mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_FirstOfDuplicates(t *testing.T) {
	b, path := attachTemp(t, []types.Note{
		{ID: 1, Text: "first"},
		{ID: 1, Text: "second"},
	})

	removed, err := b.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, "first", removed.Text)
	assert.Equal(t, []types.Note{{ID: 1, Text: "second"}}, readBack(t, path))
}

func TestRemove_NonexistentIsNoop(t *testing.T) {
	b, path := attachTemp(t, []types.Note{{ID: 1, Text: "a"}})

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = b.Remove(42)
	require.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, "no note found with ID #42", err.Error())

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	n, err := b.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClear(t *testing.T) {
	b, path := attachTemp(t, []types.Note{{ID: 1}, {ID: 2}, {ID: 3}})

	removed, err := b.Clear()
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	n, err := b.Count()
	require.NoError(t, err)
	assert.Zero(t, n)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))

	next, err := b.Add("fresh start")
	require.NoError(t, err)
	assert.Equal(t, 1, next.ID)
}

func TestRenumber(t *testing.T) {
	b, path := attachTemp(t, []types.Note{
		{ID: 4, Text: "a"},
		{ID: 4, Text: "b"},
		{ID: 1, Text: "c"},
		{ID: 9, Text: "d"},
	})

	n, err := b.Renumber()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	got := readBack(t, path)
	for i, note := range got {
		assert.Equal(t, i+1, note.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{got[0].Text, got[1].Text, got[2].Text, got[3].Text})
	assert.False(t, types.HasDuplicateIDs(got))
}

func TestRenumber_Empty(t *testing.T) {
	b, _ := attachTemp(t, nil)

	n, err := b.Renumber()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFlush_CreatesFile(t *testing.T) {
	b, path := attachTemp(t, nil)

	require.NoError(t, b.Flush())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(raw))
}

func TestMutationFailureLeavesStoreUnchanged(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	path := filepath.Join(dir, "notes.json")

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{NotesFile: path}))
	defer b.Detach()

	// Replace the parent directory with a regular file so persisting fails.
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))

	_, err := b.Add("lost")
	require.Error(t, err)

	n, err := b.Count()
	require.NoError(t, err)
	assert.Zero(t, n, "rolled-back add still visible")
}
