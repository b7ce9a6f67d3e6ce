package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newDatabasesCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "databases",
		Short: "Show available databases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			names, err := client.Databases(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printJSON(stdout, names)
		},
	}
}
