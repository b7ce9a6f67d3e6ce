package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/joergsteffens/odoo-cli/src/gitrepo"
	"github.com/joergsteffens/odoo-cli/src/instance"
	"github.com/joergsteffens/odoo-cli/src/odooapi"
	"github.com/joergsteffens/odoo-cli/src/snapshot"
)

func newSnapshotCmd(stdout, stderr io.Writer) *cobra.Command {
	var repoDir, configDir, remote string
	cmd := &cobra.Command{
		Use:   "snapshot <instance>...",
		Short: "Dump each instance's configuration into its branch of a git repository",
		Long: `
For every named instance, check out a branch named after the instance in
the target repository, replace its content with a fresh config-dump, commit
("auto-update") and push. A failing instance does not stop the run; all
failures are reported at the end.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)

			bin, err := gitrepo.Detect(ctx)
			if err != nil {
				return err
			}
			repo, err := gitrepo.Open(repoDir, gitrepo.ExecRunner{GitPath: bin.Path})
			if err != nil {
				return err
			}

			timeout := v.GetDuration("timeout")
			driver := &snapshot.Driver{
				Repo:      repo,
				Workdir:   repoDir,
				Remote:    remote,
				ConfigDir: configDir,
				Dump: func(ctx context.Context, inst instance.Instance, dir string) error {
					client, err := odooapi.New(inst.Connection(), timeout)
					if err != nil {
						return err
					}
					return client.ConfigDump(ctx, odooapi.DumpOptions{
						OutputDir:  dir,
						JSONFormat: true,
						Out:        stdout,
					})
				},
				Stdout: stdout,
				Stderr: stderr,
			}

			report := driver.Run(ctx, args)
			report.Write(stdout)
			return report.Err()
		},
	}
	cmd.Flags().StringVar(&repoDir, "repo", "", "Git working tree receiving the snapshots (required)")
	cmd.Flags().StringVar(&configDir, "config-dir", ".", "Directory holding <instance>.yaml connection files")
	cmd.Flags().StringVar(&remote, "remote", "origin", "Git remote to reset from and push to")
	_ = cmd.MarkFlagRequired("repo")
	return cmd
}
