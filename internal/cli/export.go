package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noty/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export notes to a text file",
		Long: `Export writes all notes to a text file. Without a file name the
export goes to noty_export_YYYYMMDD_HHMMSS.txt in the current directory.

Formats (--format):
  lines   one line per note: #<id> [<timestamp>] <text> (default)
  report  titled report with one block per note
  yaml    YAML sequence of notes`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runExport,
	}
}

func (a *app) runExport(cmd *cobra.Command, args []string) error {
	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	notes, err := store.List()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No notes to export.")
		return nil
	}

	now := a.now()
	filename := export.DefaultFileName(now)
	if len(args) > 0 {
		filename = args[0]
	}

	if err := export.WriteFile(filename, a.config.GetExportFormat(), notes, now); err != nil {
		return fmt.Errorf("export notes: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d notes to: %s\n", len(notes), filename)
	return nil
}
