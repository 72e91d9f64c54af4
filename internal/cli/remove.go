package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noty/pkg/types"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a note by ID",
		Args:    cobra.ExactArgs(1),
		RunE:    a.runRemove,
	}
}

func (a *app) runRemove(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errMissingID
	}
	id, err := types.ParseID(args[0])
	if err != nil {
		return err
	}

	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	removed, err := store.Remove(id)
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), removed)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed note #%d: %s\n", removed.ID, removed.Text)
	return nil
}
