package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joergsteffens/odoo-cli/src/odooapi"
)

func newCustomersCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "customers",
		Short: "List all current customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			records, err := odooapi.Customers(cmdContext(cmd), client)
			if err != nil {
				return err
			}
			return printJSON(stdout, records)
		},
	}
}

func newActiveSubscriptionsCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "active-subscriptions",
		Short: "List all active subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := odooapi.ActiveSubscriptions(cmdContext(cmd), client)
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
}

func newSubscriptionCredentialsCmd(stdout, stderr io.Writer) *cobra.Command {
	var evaluation, noEvaluation bool
	cmd := &cobra.Command{
		Use:   "subscription-credentials",
		Short: "Show current credentials of active subscriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var filter *bool
			switch {
			case evaluation:
				t := true
				filter = &t
			case noEvaluation:
				f := false
				filter = &f
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := odooapi.SubscriptionCredentials(cmdContext(cmd), client, filter)
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
	cmd.Flags().BoolVar(&evaluation, "evaluation", false, "Credentials only for evaluation subscriptions (default: both)")
	cmd.Flags().BoolVar(&noEvaluation, "no-evaluation", false, "Credentials only for normal subscriptions")
	cmd.MarkFlagsMutuallyExclusive("evaluation", "no-evaluation")
	return cmd
}

func newSupportCustomersCmd(stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "support-customers",
		Short: "Show all customers with an active support contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			raw, err := odooapi.SupportCustomers(cmdContext(cmd), client)
			if err != nil {
				return err
			}
			return printRaw(stdout, raw)
		},
	}
}
