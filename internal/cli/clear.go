package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const clearPrompt = "Are you sure you want to delete all notes? (y/N): "

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all notes (with confirmation)",
		Args:  cobra.NoArgs,
		RunE:  a.runClear,
	}
}

func (a *app) runClear(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

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
		fmt.Fprintln(out, "No notes to clear.")
		return nil
	}

	if !a.flags.yes {
		fmt.Fprintf(out, "Warning: This will permanently delete all %d notes!\n", count)
		fmt.Fprintln(out, "This action cannot be undone.")

		ok, err := confirm(cmd.InOrStdin(), out, clearPrompt)
		if err != nil {
			return fmt.Errorf("read confirmation: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "Operation cancelled.")
			return nil
		}
	}

	removed, err := store.Clear()
	if err != nil {
		return fmt.Errorf("clear notes: %w", err)
	}
	fmt.Fprintf(out, "Cleared all %d notes.\n", removed)
	return nil
}
