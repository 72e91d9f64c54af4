package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/noty/pkg/noty"
)

const modulePath = "github.com/mesh-intelligence/noty"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the noty version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "noty v%s\nmodule: %s\n", noty.Version, modulePath)
			return nil
		},
	}
}
