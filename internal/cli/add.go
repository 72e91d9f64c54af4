package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a note",
		Long: `Add appends a note with the next free ID and the current local time.
All arguments are joined with single spaces to form the note text.

Example:
  noty add buy milk
  noty add "call the dentist at 9"
  noty add -- -5 degrees tomorrow`,
		Args: cobra.ArbitraryArgs,
		RunE: a.runAdd,
	}
}

func (a *app) runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return errMissingText
	}

	store, err := a.attachStore()
	if err != nil {
		return err
	}
	defer store.Detach()

	note, err := store.Add(text)
	if err != nil {
		return fmt.Errorf("add note: %w", err)
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), note)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added note: %s\n", note.Text)
	return nil
}
