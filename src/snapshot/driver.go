// Package snapshot drives the config-to-git workflow: per configured
// instance, refresh a branch named after the instance, replace the working
// tree with a fresh configuration dump, commit and push. Failures never stop
// the run; they are aggregated into the final report.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/joergsteffens/odoo-cli/src/gitrepo"
	"github.com/joergsteffens/odoo-cli/src/instance"
)

// CommitMessage is the fixed message for snapshot commits.
const CommitMessage = "auto-update"

// Git is the subset of gitrepo.Repo the driver needs. A fake implementation
// backs the unit tests.
type Git interface {
	Fetch(ctx context.Context, remote string) error
	EnsureBranch(ctx context.Context, name string) error
	Checkout(ctx context.Context, name string) error
	HasRemoteBranch(ctx context.Context, remote, name string) (bool, error)
	ResetHard(ctx context.Context, remote, name string) error
	WipeWorktree() error
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) (gitrepo.CommitResult, error)
	Push(ctx context.Context, remote, name string) error
}

// Dumper writes an instance's configuration dump into dir.
type Dumper func(ctx context.Context, inst instance.Instance, dir string) error

// Driver runs the snapshot workflow against one git working tree.
type Driver struct {
	Repo      Git
	Workdir   string // the working tree the dump files go into
	Remote    string // defaults to "origin"
	ConfigDir string // directory holding <name>.yaml instance files
	Dump      Dumper

	Stdout io.Writer
	Stderr io.Writer
	Logger *logrus.Entry
}

// Run snapshots every named instance, in order. A failing instance is
// recorded and the next one attempted; the report carries the aggregate.
func (d *Driver) Run(ctx context.Context, names []string) Report {
	if d.Remote == "" {
		d.Remote = "origin"
	}
	if d.Stdout == nil {
		d.Stdout = os.Stdout
	}
	if d.Stderr == nil {
		d.Stderr = os.Stderr
	}
	if d.Logger == nil {
		d.Logger = logrus.WithField("component", "snapshot")
	}

	var report Report
	for i, name := range names {
		fmt.Fprintf(d.Stdout, "[%d/%d] %s\n", i+1, len(names), name)
		if err := d.snapshotInstance(ctx, name); err != nil {
			d.Logger.WithField("instance", name).Errorf("snapshot failed: %v", err)
			report.fail(name, failureReason(err))
			continue
		}
		report.success(name)
	}
	return report
}

// snapshotInstance runs the wipe, dump, commit, push sequence for a single
// instance. Any error is a per-instance failure, never fatal to the run.
func (d *Driver) snapshotInstance(ctx context.Context, name string) error {
	inst, err := instance.Load(d.ConfigDir, name)
	if err != nil {
		return err
	}

	if err := d.Repo.EnsureBranch(ctx, name); err != nil {
		return err
	}
	if err := d.Repo.Checkout(ctx, name); err != nil {
		return err
	}
	if err := d.Repo.Fetch(ctx, d.Remote); err != nil {
		return err
	}
	hasRemote, err := d.Repo.HasRemoteBranch(ctx, d.Remote, name)
	if err != nil {
		return err
	}
	if hasRemote {
		// Discard local drift so every snapshot starts from the published
		// state. A branch without a remote counterpart is a bootstrap: the
		// first push below creates it.
		if err := d.Repo.ResetHard(ctx, d.Remote, name); err != nil {
			return err
		}
	}

	if err := d.Repo.WipeWorktree(); err != nil {
		return err
	}
	if err := d.Dump(ctx, inst, d.Workdir); err != nil {
		return err
	}
	if err := d.Repo.AddAll(ctx); err != nil {
		return err
	}
	result, err := d.Repo.Commit(ctx, CommitMessage)
	if err != nil {
		return err
	}
	if result.NoChanges {
		d.Logger.WithField("instance", name).Info("no changes since last snapshot")
		return nil
	}
	return d.Repo.Push(ctx, d.Remote, name)
}

// failureReason keeps the report terse for the common missing-config case
// while preserving the full error text otherwise.
func failureReason(err error) string {
	var missing *instance.MissingConfigError
	if errors.As(err, &missing) {
		return "missing config"
	}
	return err.Error()
}
