// Package gitrepo wraps the git command-line interface for the snapshot
// workflow: branch management, working-tree replacement, commit and push.
package gitrepo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes a git command in a working directory and returns its
// captured output. The seam exists so tests can substitute a fake.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs the real git binary.
type ExecRunner struct {
	// GitPath is the binary to execute; empty means "git" from PATH.
	GitPath string
}

func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	bin := r.GitPath
	if bin == "" {
		bin = "git"
	}
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	err := cmd.Run()
	return stdoutBuf.String(), stderrBuf.String(), err
}

// Repo is a local git working tree.
type Repo struct {
	Dir string
	Run Runner
}

// Open returns a Repo for the given working tree. The directory must exist;
// whether it is a repository is checked by the first git command run in it.
func Open(dir string, run Runner) (*Repo, error) {
	st, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("git: open repository: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("git: open repository: %s is not a directory", dir)
	}
	if run == nil {
		run = ExecRunner{}
	}
	return &Repo{Dir: dir, Run: run}, nil
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := r.Run.Run(ctx, r.Dir, args...)
	if err != nil {
		return stdout, fmt.Errorf("git %s: %w: %s", commandName(args), err, strings.TrimSpace(stderr))
	}
	return stdout, nil
}

// commandName returns the git subcommand from an argument list, skipping
// leading -c key=value configuration pairs.
func commandName(args []string) string {
	for i := 0; i < len(args); i++ {
		if args[i] == "-c" {
			i++
			continue
		}
		return args[i]
	}
	return "git"
}

// Fetch updates the remote-tracking branches for the given remote.
func (r *Repo) Fetch(ctx context.Context, remote string) error {
	_, err := r.git(ctx, "fetch", remote)
	return err
}

// EnsureBranch creates the local branch if it does not exist yet. A branch
// that already exists is not an error.
func (r *Repo) EnsureBranch(ctx context.Context, name string) error {
	_, stderr, err := r.Run.Run(ctx, r.Dir, "branch", name)
	if err != nil {
		if strings.Contains(stderr, "already exists") {
			return nil
		}
		return fmt.Errorf("git branch: %w: %s", err, strings.TrimSpace(stderr))
	}
	return nil
}

// Checkout switches the working tree to the given branch. The switch is
// forced: a failed run may leave the tree wiped but uncommitted, and that
// leftover state must not block the next instance's snapshot.
func (r *Repo) Checkout(ctx context.Context, name string) error {
	_, err := r.git(ctx, "checkout", "--force", name)
	return err
}

// HasRemoteBranch reports whether the remote-tracking ref for the branch
// exists locally. Call Fetch first so the answer reflects the remote.
func (r *Repo) HasRemoteBranch(ctx context.Context, remote, name string) (bool, error) {
	ref := fmt.Sprintf("refs/remotes/%s/%s", remote, name)
	_, stderr, err := r.Run.Run(ctx, r.Dir, "show-ref", "--verify", "--quiet", ref)
	if err == nil {
		return true, nil
	}
	// show-ref exits non-zero without output when the ref is unknown.
	if strings.TrimSpace(stderr) == "" {
		return false, nil
	}
	return false, fmt.Errorf("git show-ref: %w: %s", err, strings.TrimSpace(stderr))
}

// ResetHard discards local state in favor of the remote-tracking branch.
func (r *Repo) ResetHard(ctx context.Context, remote, name string) error {
	_, err := r.git(ctx, "reset", "--hard", remote+"/"+name)
	return err
}

// WipeWorktree deletes everything in the working tree except the .git
// directory. The next snapshot is a complete replacement, never a merge.
func (r *Repo) WipeWorktree() error {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		return fmt.Errorf("git: wipe worktree: %w", err)
	}
	for _, entry := range entries {
		if entry.Name() == ".git" {
			continue
		}
		if err := os.RemoveAll(filepath.Join(r.Dir, entry.Name())); err != nil {
			return fmt.Errorf("git: wipe worktree: %w", err)
		}
	}
	return nil
}

// AddAll stages every change in the working tree, deletions included.
func (r *Repo) AddAll(ctx context.Context) error {
	_, err := r.git(ctx, "add", "--all")
	return err
}

// CommitResult is the two-valued outcome of Commit: either a commit was
// created or there was nothing to commit.
type CommitResult struct {
	Committed bool
	NoChanges bool
}

// Commit creates a commit with the given message, signing disabled. A clean
// working tree is reported as NoChanges rather than an error, so callers
// never have to interpret git's exit code for the empty case.
func (r *Repo) Commit(ctx context.Context, message string) (CommitResult, error) {
	status, err := r.git(ctx, "status", "--porcelain")
	if err != nil {
		return CommitResult{}, err
	}
	if strings.TrimSpace(status) == "" {
		return CommitResult{NoChanges: true}, nil
	}
	if _, err := r.git(ctx, "-c", "commit.gpgsign=false", "commit", "-m", message); err != nil {
		return CommitResult{}, err
	}
	return CommitResult{Committed: true}, nil
}

// Push publishes the branch, creating or updating its upstream.
func (r *Repo) Push(ctx context.Context, remote, name string) error {
	_, err := r.git(ctx, "push", "--set-upstream", remote, name)
	return err
}
