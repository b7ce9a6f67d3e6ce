package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joergsteffens/odoo-cli/src/odooapi"
)

func newConfigDumpCmd(stdout, stderr io.Writer) *cobra.Command {
	var outputDir string
	var jsonFormat bool
	cmd := &cobra.Command{
		Use:   "config-dump",
		Short: "Dump (parts of) the odoo configuration/data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputDir != "" {
				st, err := os.Stat(outputDir)
				if err != nil || !st.IsDir() {
					return fmt.Errorf("--output-directory must be an existing directory: %s", outputDir)
				}
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			return client.ConfigDump(cmdContext(cmd), odooapi.DumpOptions{
				OutputDir:  outputDir,
				JSONFormat: jsonFormat,
				Out:        stdout,
			})
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-directory", "o", "", "Directory to store config dump files")
	cmd.Flags().BoolVar(&jsonFormat, "json", false, "Output in JSON format")
	return cmd
}
