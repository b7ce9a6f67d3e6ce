package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joergsteffens/odoo-cli/src/cli"
	"github.com/joergsteffens/odoo-cli/src/version"
)

func TestRootHelp_ShowsUsage(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"--help"})

	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	o := out.String()
	if !strings.Contains(o, "Usage:") || !strings.Contains(o, "odoo-cli") {
		t.Fatalf("help output missing expected content; got: %s", o)
	}
	for _, sub := range []string{"call", "config-dump", "snapshot", "databases"} {
		if !strings.Contains(o, sub) {
			t.Fatalf("help output missing subcommand %q; got: %s", sub, o)
		}
	}
}

func TestVersionCmd(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"version"})

	if _, e := cmd.ExecuteC(); e != nil {
		t.Fatalf("unexpected error: %v", e)
	}
	if got := strings.TrimSpace(out.String()); got != version.Version {
		t.Fatalf("version output = %q, want %q", got, version.Version)
	}
}

func TestCall_RequiresModelAndMethod(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"call", "res.partner"})

	if _, e := cmd.ExecuteC(); e == nil {
		t.Fatalf("expected error for missing method argument")
	}
}

func TestSnapshot_RequiresRepoFlag(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"snapshot", "production"})

	if _, e := cmd.ExecuteC(); e == nil {
		t.Fatalf("expected error for missing --repo flag")
	}
}
