package types

import (
	"errors"
	"strings"
)

// Config holds the notes file location and export preferences passed to
// NoteStore.Attach and the export command.
type Config struct {
	NotesFile    string `json:"notes_file" yaml:"notes_file"`
	ExportFormat string `json:"export_format,omitempty" yaml:"export_format,omitempty"`
}

// Export formats.
const (
	ExportLines  = "lines"
	ExportReport = "report"
	ExportYAML   = "yaml"
)

// DefaultExportFormat is used when Config.ExportFormat is empty.
const DefaultExportFormat = ExportLines

// Config validation errors.
var (
	ErrNotesFileEmpty      = errors.New("notes file must not be empty")
	ErrExportFormatUnknown = errors.New("unknown export format")
)

// knownExportFormats lists the formats that Validate accepts.
var knownExportFormats = map[string]bool{
	ExportLines:  true,
	ExportReport: true,
	ExportYAML:   true,
}

// ExportFormats returns the accepted export format names in display order.
func ExportFormats() []string {
	return []string{ExportLines, ExportReport, ExportYAML}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if strings.TrimSpace(c.NotesFile) == "" {
		return ErrNotesFileEmpty
	}
	if c.ExportFormat != "" && !knownExportFormats[c.ExportFormat] {
		return ErrExportFormatUnknown
	}
	return nil
}

// GetExportFormat returns the configured export format, or
// DefaultExportFormat when none is set.
func (c Config) GetExportFormat() string {
	if c.ExportFormat == "" {
		return DefaultExportFormat
	}
	return c.ExportFormat
}
