package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fix",
		Short: "Fix duplicate IDs by renumbering notes 1..n in file order",
		Args:  cobra.NoArgs,
		RunE:  a.runFix,
	}
}

func (a *app) runFix(cmd *cobra.Command, args []string) error {
	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	count, err := store.Count()
	if err != nil {
		return fmt.Errorf("count notes: %w", err)
	}
	if count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No notes to fix.")
		return nil
	}

	n, err := store.Renumber()
	if err != nil {
		return fmt.Errorf("fix ids: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Fixed IDs for %d notes.\n", n)
	return nil
}
