package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noty/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config and an empty notes file",
		Long: `Init creates the configuration directory with a config.yaml and an
empty notes file. Existing files are left as they are.`,
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(a.configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	// notes_file outranks NOTY_NOTES_FILE, so it is pinned only when the
	// location was chosen explicitly with --file.
	cfg := configFile{ExportFormat: a.config.GetExportFormat()}
	if a.flags.notesFile != "" {
		cfg.NotesFile = a.config.NotesFile
	}

	configPath := paths.ConfigFile(a.configDir)
	created, err := writeConfigIfMissing(configPath, cfg)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if created {
		a.logger.Debug("wrote default config")
	}

	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	if _, err := os.Stat(a.config.NotesFile); errors.Is(err, fs.ErrNotExist) {
		if err := store.Flush(); err != nil {
			return fmt.Errorf("create notes file: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "noty initialized")
	fmt.Fprintf(out, "  config: %s\n", configPath)
	fmt.Fprintf(out, "  notes:  %s\n", a.config.NotesFile)
	return nil
}
