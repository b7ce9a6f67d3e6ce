package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/joergsteffens/odoo-cli/src/odooapi"
)

// DefaultURL is the odoo server used when none is configured.
const DefaultURL = "https://bareos.odoo.com"

// addGlobalFlags adds the persistent connection flags to the root command.
func addGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", "", "Config file path")
	pf.BoolP("debug", "d", false, "Enable debugging output")
	pf.String("url", DefaultURL, "URL of the odoo server")
	pf.String("apikey", "", "odoo api key")
	pf.String("database", "", "odoo database (alias: --db)")
	pf.Duration("timeout", 0, "HTTP request timeout (0 disables the timeout)")
	pf.SetNormalizeFunc(normalizeFlagAliases)
}

// normalizeFlagAliases maps the historical --db spelling onto --database.
func normalizeFlagAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "db" {
		name = "database"
	}
	return pflag.NormalizedName(name)
}

// resolveSettings merges flags, ODOO_* environment variables, and the
// optional config file into one settings view. Flags win over the
// environment, the environment over the file.
func resolveSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("url", DefaultURL)

	pf := cmd.Root().PersistentFlags()
	for _, name := range []string{"url", "apikey", "database", "timeout", "debug"} {
		if err := v.BindPFlag(name, pf.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	v.SetEnvPrefix("ODOO")
	v.AutomaticEnv()

	if cfgFile, _ := pf.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if v.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return v, nil
}

// newClient builds the API client from the resolved settings.
func newClient(cmd *cobra.Command) (*odooapi.HTTPClient, error) {
	v, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}
	conn := odooapi.Connection{
		BaseURL:  v.GetString("url"),
		APIKey:   v.GetString("apikey"),
		Database: v.GetString("database"),
	}
	return odooapi.New(conn, v.GetDuration("timeout"))
}

// cmdContext returns the command's context, falling back to Background.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
