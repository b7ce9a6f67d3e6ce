// Package cli implements the odoo-cli command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd returns the root cobra command for the odoo-cli.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "odoo-cli",
		Short:         "Talk to an odoo server's /json/2 API and snapshot its configuration into git",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addGlobalFlags(cmd)

	cmd.AddCommand(newIdentityCmd(stdout, stderr))
	cmd.AddCommand(newDatabasesCmd(stdout, stderr))
	cmd.AddCommand(newListCmd(stdout, stderr))
	cmd.AddCommand(newShowCmd(stdout, stderr))
	cmd.AddCommand(newDumpCmd(stdout, stderr))
	cmd.AddCommand(newReinitCmd(stdout, stderr))
	cmd.AddCommand(newCreateCmd(stdout, stderr))
	cmd.AddCommand(newCustomersCmd(stdout, stderr))
	cmd.AddCommand(newActiveSubscriptionsCmd(stdout, stderr))
	cmd.AddCommand(newSubscriptionCredentialsCmd(stdout, stderr))
	cmd.AddCommand(newSupportCustomersCmd(stdout, stderr))
	cmd.AddCommand(newMailAddCmd(stdout, stderr))
	cmd.AddCommand(newConfigDumpCmd(stdout, stderr))
	cmd.AddCommand(newCallCmd(stdout, stderr))
	cmd.AddCommand(newSnapshotCmd(stdout, stderr))
	cmd.AddCommand(newVersionCmd(stdout))

	return cmd
}

// Execute runs the CLI with the process stdio and returns the exit code.
func Execute() int {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
