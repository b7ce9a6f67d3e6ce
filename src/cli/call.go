package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joergsteffens/odoo-cli/src/jsonarg"
)

func newCallCmd(stdout, stderr io.Writer) *cobra.Command {
	var jsonValue string
	var argPairs []string
	cmd := &cobra.Command{
		Use:   "call <model> <method>",
		Short: "Generic call",
		Args:  cobra.ExactArgs(2),
		Example: `  # simple, without parameter:
  odoo-cli call res.users context_get
  # with json parameter:
  odoo-cli call res.partner search_read --json '{ "fields": ["id", "name", "display_name"], "order": "id ASC" }'
  # with mixed json and direct parameter:
  odoo-cli call res.partner search_read --json '{ "fields": ["id", "name"] }' --args order="id ASC"
  # with search domain:
  odoo-cli call res.partner search_read --json '{ "domain": [["name", "ilike", "B%"]], "fields": ["id", "name"] }'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]any
			if jsonValue != "" {
				var err error
				payload, err = jsonarg.Parse(jsonValue, cmd.InOrStdin())
				if err != nil {
					return err
				}
			}
			// key=value pairs overwrite json parameters.
			extra, err := jsonarg.ParseKeyValues(argPairs)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := client.Call(cmdContext(cmd), args[0], args[1], jsonarg.Merge(payload, extra))
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
	cmd.Flags().StringVar(&jsonValue, "json", "", `JSON string, file path, or "-" for stdin`)
	cmd.Flags().StringArrayVar(&argPairs, "args", nil, "Method parameters as key=value pairs, additional to the JSON structure (repeatable)")
	return cmd
}
