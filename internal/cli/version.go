package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mikelcalvo/invoice-cli/internal/tui"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show Invoice CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "invoice-cli v%s\nCreated by %s in %s\n", tui.Version, tui.Author, tui.Year)
			return nil
		},
	}
}
