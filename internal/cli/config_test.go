package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingDirIsNotAnError(t *testing.T) {
	v, err := loadConfig(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, "lines", v.GetString(cfgKeyExportFormat))
	assert.Empty(t, v.GetString(cfgKeyNotesFile))
}

func TestLoadConfig_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.yaml"),
		[]byte("notes_file: /srv/notes.json\nexport_format: report\n"),
		0o644,
	))

	v, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/srv/notes.json", v.GetString(cfgKeyNotesFile))
	assert.Equal(t, "report", v.GetString(cfgKeyExportFormat))
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("notes_file: [unclosed\n"), 0o644))

	_, err := loadConfig(dir)
	assert.Error(t, err)
}

func TestWriteConfigIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	created, err := writeConfigIfMissing(path, configFile{NotesFile: "/n.json", ExportFormat: "yaml"})
	require.NoError(t, err)
	assert.True(t, created)

	v, err := loadConfig(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, "/n.json", v.GetString(cfgKeyNotesFile))
	assert.Equal(t, "yaml", v.GetString(cfgKeyExportFormat))

	created, err = writeConfigIfMissing(path, configFile{NotesFile: "/other.json"})
	require.NoError(t, err)
	assert.False(t, created)
}
