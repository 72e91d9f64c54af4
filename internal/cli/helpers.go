// Shared helpers for noty commands.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/noty/pkg/sqlite"
	"github.com/mesh-intelligence/noty/pkg/types"
)

// Usage errors for missing operands.
var (
	errMissingText = fmt.Errorf("%w\nUsage: noty -a <text>", types.ErrEmptyText)
	errMissingID   = errors.New("please provide the ID of the note to remove\nUsage: noty -r <id>")
)

// newLogger builds the process logger. Warnings and errors go to stderr;
// verbose lowers the level to debug.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	config.Encoding = "console"
	config.DisableStacktrace = true
	return config.Build()
}

// attachStore creates a note store and attaches it to the resolved notes
// file. The caller must defer store.Detach().
func (a *app) attachStore() (types.NoteStore, error) {
	store := sqlite.NewBackend(
		sqlite.WithLogger(a.logger),
		sqlite.WithClock(a.now),
	)
	if err := store.Attach(a.config); err != nil {
		return nil, fmt.Errorf("open notes: %w", err)
	}
	return store, nil
}

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// confirm prompts until the reader answers yes or no. An empty answer or end
// of input counts as no.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return false, scanner.Err()
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		default:
			fmt.Fprintln(out, "Please enter 'y' for yes or 'n' for no.")
		}
	}
}
