package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joergsteffens/odoo-cli/src/odooapi"
)

func newMailAddCmd(stdout, stderr io.Writer) *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "mail-add <file>",
		Short: "Import an email (as file) into odoo",
		Long:  "Import a file containing a full email (extension is often .eml) into odoo. Use '-' for stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var message []byte
			var err error
			if args[0] == "-" {
				message, err = io.ReadAll(cmd.InOrStdin())
			} else {
				message, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("read email: %w", err)
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := odooapi.MailAdd(cmdContext(cmd), client, model, string(message))
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "Odoo model the email gets processed into, e.g. 'crm.lead'")
	return cmd
}
