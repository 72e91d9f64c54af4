// Package export renders notes to a human-readable text file.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/noty/pkg/types"
)

// Report layout constants.
const (
	reportTitle     = "NOTY - Exported Notes"
	reportRuleWidth = 50
	noteRuleWidth   = 40
)

// lineEscaper keeps each note on a single output line.
var lineEscaper = strings.NewReplacer(`\`, `\\`, "\r", `\r`, "\n", `\n`)

// DefaultFileName returns the export file name used when none is given,
// noty_export_YYYYMMDD_HHMMSS.txt.
func DefaultFileName(now time.Time) string {
	return fmt.Sprintf("noty_export_%s.txt", now.Format("20060102_150405"))
}

// Write renders notes to w in the given format. now is the export time shown
// by the report format.
func Write(w io.Writer, format string, notes []types.Note, now time.Time) error {
	switch format {
	case "", types.ExportLines:
		return writeLines(w, notes)
	case types.ExportReport:
		return writeReport(w, notes, now)
	case types.ExportYAML:
		return writeYAML(w, notes)
	default:
		return fmt.Errorf("%w %q (valid: %s)", types.ErrExportFormatUnknown, format, strings.Join(types.ExportFormats(), ", "))
	}
}

// WriteFile renders notes into the file at path, replacing any existing
// file. Output goes to a temp file in the same directory that is renamed into
// place, so a failed export leaves neither a partial file nor a changed one.
func WriteFile(path, format string, notes []types.Note, now time.Time) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".noty-export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = Write(w, format, notes, now); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting export file mode: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming export file: %w", err)
	}
	return nil
}

// writeLines writes exactly one line per note: "#<id> [<timestamp>] <text>".
func writeLines(w io.Writer, notes []types.Note) error {
	for _, n := range notes {
		if _, err := fmt.Fprintf(w, "#%d [%s] %s\n", n.ID, n.Timestamp, lineEscaper.Replace(n.Text)); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(w io.Writer, notes []types.Note, now time.Time) error {
	var b strings.Builder
	b.WriteString(reportTitle + "\n")
	b.WriteString(strings.Repeat("=", reportRuleWidth) + "\n")
	fmt.Fprintf(&b, "Exported on: %s\n", types.FormatTimestamp(now))
	fmt.Fprintf(&b, "Total notes: %d\n\n", len(notes))

	for _, n := range notes {
		fmt.Fprintf(&b, "#%d - %s\n", n.ID, n.Timestamp)
		b.WriteString(n.Text + "\n")
		b.WriteString(strings.Repeat("-", noteRuleWidth) + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeYAML(w io.Writer, notes []types.Note) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
