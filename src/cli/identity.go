package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func newIdentityCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "identity",
		Short: "Show the calling user's context (who am I?)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.UserContext(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
}
