package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noty/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all notes with timestamps",
		Args:  cobra.NoArgs,
		RunE:  a.runList,
	}
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	notes, err := store.List()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), notes)
	}
	renderNotes(cmd.OutOrStdout(), notes)
	if types.HasDuplicateIDs(notes) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Duplicate IDs found; run 'noty -f' to renumber.")
	}
	return nil
}
