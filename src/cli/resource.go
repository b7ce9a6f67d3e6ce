package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joergsteffens/odoo-cli/src/jsonarg"
	"github.com/joergsteffens/odoo-cli/src/odooapi"
)

const modelArgHelp = "Odoo model, e.g. res.users, res.partner, crm.lead, ..."

func newListCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list <model>",
		Short: "List objects of a resource (id, name, display_name)",
		Long:  "List objects of a resource.\n\n<model>: " + modelArgHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			records, err := odooapi.List(cmdContext(cmd), client, args[0])
			if err != nil {
				return err
			}
			return printJSON(stdout, records)
		},
	}
}

func newShowCmd(stdout, stderr io.Writer) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "show <model> <id>",
		Short: "Show a single odoo object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			records, err := odooapi.Show(cmdContext(cmd), client, args[0], args[1], verbose)
			if err != nil {
				return err
			}
			return printJSON(stdout, records)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include empty fields")
	return cmd
}

func newDumpCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <model>",
		Short: "Dump all records of a resource with all fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			records, err := odooapi.DumpModel(cmdContext(cmd), client, args[0])
			if err != nil {
				return err
			}
			return printJSON(stdout, records)
		},
	}
}

func newReinitCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "reinit <model>",
		Short: "Let odoo recalculate some internal fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := odooapi.Reinit(cmdContext(cmd), client, args[0])
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
}

func newCreateCmd(stdout, stderr io.Writer) *cobra.Command {
	var argPairs []string
	cmd := &cobra.Command{
		Use:     "create <model>",
		Short:   "Create a new odoo object",
		Args:    cobra.ExactArgs(1),
		Example: `  odoo-cli create res.partner --args name="Example User" --args email="example.user@example.com"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := jsonarg.ParseKeyValues(argPairs)
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := odooapi.Create(cmdContext(cmd), client, args[0], values)
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
	cmd.Flags().StringArrayVar(&argPairs, "args", nil, "Field values as key=value pairs (repeatable)")
	return cmd
}
