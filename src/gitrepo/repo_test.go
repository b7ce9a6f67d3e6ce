package gitrepo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joergsteffens/odoo-cli/src/gitrepo"
)

// fakeRunner scripts git invocations by subcommand.
type fakeRunner struct {
	// results maps the joined argument list to a scripted outcome.
	results map[string]fakeResult
	calls   [][]string
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, dir string, args ...string) (string, string, error) {
	f.calls = append(f.calls, args)
	res := f.results[strings.Join(args, " ")]
	return res.stdout, res.stderr, res.err
}

func newTestRepo(t *testing.T, run gitrepo.Runner) *gitrepo.Repo {
	t.Helper()
	repo, err := gitrepo.Open(t.TempDir(), run)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return repo
}

func TestEnsureBranch_AlreadyExistsIsNotAnError(t *testing.T) {
	run := &fakeRunner{results: map[string]fakeResult{
		"branch production": {
			stderr: "fatal: a branch named 'production' already exists",
			err:    errors.New("exit status 128"),
		},
	}}
	repo := newTestRepo(t, run)
	if err := repo.EnsureBranch(context.Background(), "production"); err != nil {
		t.Fatalf("EnsureBranch error: %v", err)
	}
}

func TestEnsureBranch_OtherFailure(t *testing.T) {
	run := &fakeRunner{results: map[string]fakeResult{
		"branch production": {
			stderr: "fatal: not a git repository",
			err:    errors.New("exit status 128"),
		},
	}}
	repo := newTestRepo(t, run)
	err := repo.EnsureBranch(context.Background(), "production")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Fatalf("error should carry stderr, got: %v", err)
	}
}

func TestCommit_NoChanges(t *testing.T) {
	run := &fakeRunner{results: map[string]fakeResult{
		"status --porcelain": {stdout: "\n"},
	}}
	repo := newTestRepo(t, run)
	result, err := repo.Commit(context.Background(), "auto-update")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if !result.NoChanges || result.Committed {
		t.Fatalf("result = %+v, want NoChanges", result)
	}
	// git commit must not have run
	for _, call := range run.calls {
		if strings.Contains(strings.Join(call, " "), "commit -m") {
			t.Fatalf("commit was invoked on a clean tree: %v", run.calls)
		}
	}
}

func TestCommit_CreatesCommitWithSigningDisabled(t *testing.T) {
	run := &fakeRunner{results: map[string]fakeResult{
		"status --porcelain": {stdout: "M res.company.json\n"},
	}}
	repo := newTestRepo(t, run)
	result, err := repo.Commit(context.Background(), "auto-update")
	if err != nil {
		t.Fatalf("Commit error: %v", err)
	}
	if !result.Committed || result.NoChanges {
		t.Fatalf("result = %+v, want Committed", result)
	}
	last := strings.Join(run.calls[len(run.calls)-1], " ")
	if last != "-c commit.gpgsign=false commit -m auto-update" {
		t.Fatalf("unexpected commit invocation: %s", last)
	}
}

func TestCheckout_ForcesBranchSwitch(t *testing.T) {
	// A failed snapshot leaves a wiped but uncommitted tree; switching to
	// the next instance's branch must discard it rather than refuse.
	run := &fakeRunner{results: map[string]fakeResult{}}
	repo := newTestRepo(t, run)
	if err := repo.Checkout(context.Background(), "production"); err != nil {
		t.Fatalf("Checkout error: %v", err)
	}
	got := strings.Join(run.calls[0], " ")
	if got != "checkout --force production" {
		t.Fatalf("unexpected checkout invocation: %s", got)
	}
}

func TestHasRemoteBranch(t *testing.T) {
	run := &fakeRunner{results: map[string]fakeResult{
		"show-ref --verify --quiet refs/remotes/origin/present": {},
		"show-ref --verify --quiet refs/remotes/origin/absent": {
			err: errors.New("exit status 1"),
		},
		"show-ref --verify --quiet refs/remotes/origin/broken": {
			stderr: "fatal: corrupt ref store",
			err:    errors.New("exit status 128"),
		},
	}}
	repo := newTestRepo(t, run)

	ok, err := repo.HasRemoteBranch(context.Background(), "origin", "present")
	if err != nil || !ok {
		t.Fatalf("present: ok=%v err=%v", ok, err)
	}
	ok, err = repo.HasRemoteBranch(context.Background(), "origin", "absent")
	if err != nil || ok {
		t.Fatalf("absent: ok=%v err=%v", ok, err)
	}
	if _, err = repo.HasRemoteBranch(context.Background(), "origin", "broken"); err == nil {
		t.Fatalf("broken: expected error")
	}
}

func TestWipeWorktree_KeepsGitDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{".git", "sub"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"res.company.json", filepath.Join(".git", "HEAD"), filepath.Join("sub", "x.json")} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	repo, err := gitrepo.Open(dir, &fakeRunner{results: map[string]fakeResult{}})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if err := repo.WipeWorktree(); err != nil {
		t.Fatalf("WipeWorktree error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ".git" {
		t.Fatalf("entries after wipe: %v", entries)
	}
	if _, err := os.Stat(filepath.Join(dir, ".git", "HEAD")); err != nil {
		t.Fatalf(".git content was touched: %v", err)
	}
}

func TestOpen_MissingDirectory(t *testing.T) {
	if _, err := gitrepo.Open("/does/not/exist", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestExtractVersion(t *testing.T) {
	got, err := gitrepo.ExtractVersion("git version 2.43.0\n")
	if err != nil {
		t.Fatalf("ExtractVersion error: %v", err)
	}
	if got != "2.43.0" {
		t.Fatalf("version = %q, want 2.43.0", got)
	}
	if _, err := gitrepo.ExtractVersion("no version here"); err == nil {
		t.Fatalf("expected error for unparsable output")
	}
}
