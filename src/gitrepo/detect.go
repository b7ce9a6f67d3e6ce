package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// BinaryInfo describes a detected git CLI binary.
type BinaryInfo struct {
	Path    string
	Version string
}

var versionRegexp = regexp.MustCompile(`git version ([0-9]+\.[0-9]+[0-9.]*)`)

// Detect locates the git binary on PATH and queries its version. The context
// bounds the version subprocess.
func Detect(ctx context.Context) (BinaryInfo, error) {
	exe, err := exec.LookPath("git")
	if err != nil {
		return BinaryInfo{}, fmt.Errorf("git binary not found on PATH: %w", err)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	out, err := exec.CommandContext(ctx, exe, "version").CombinedOutput()
	if err != nil {
		return BinaryInfo{}, fmt.Errorf("git: version command failed: %w", err)
	}
	ver, err := ExtractVersion(string(out))
	if err != nil {
		return BinaryInfo{}, err
	}
	return BinaryInfo{Path: exe, Version: ver}, nil
}

// ExtractVersion derives the git version string from the supplied command
// output. Exposed for testing.
func ExtractVersion(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		if matches := versionRegexp.FindStringSubmatch(line); len(matches) == 2 {
			return strings.TrimSuffix(matches[1], "."), nil
		}
	}
	return "", errors.New("git: could not parse version output")
}
