package snapshot

import (
	"fmt"
	"io"
	"strings"
)

// Failure records one instance that could not be snapshotted.
type Failure struct {
	Name   string
	Reason string
}

// Report aggregates the outcome of a snapshot run. Instances appear in the
// order they were processed.
type Report struct {
	Succeeded []string
	Failed    []Failure
}

func (r *Report) success(name string) {
	r.Succeeded = append(r.Succeeded, name)
}

func (r *Report) fail(name, reason string) {
	r.Failed = append(r.Failed, Failure{Name: name, Reason: reason})
}

// FailedNames returns the names of all failed instances.
func (r Report) FailedNames() []string {
	names := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		names = append(names, f.Name)
	}
	return names
}

// Err returns nil when every instance succeeded, otherwise a single error
// naming all failed instances.
func (r Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("snapshot failed for: %s", strings.Join(r.FailedNames(), ", "))
}

// Write prints a human-readable summary.
func (r Report) Write(w io.Writer) {
	for _, name := range r.Succeeded {
		fmt.Fprintf(w, "%s: SUCCESS\n", name)
	}
	for _, f := range r.Failed {
		fmt.Fprintf(w, "%s: FAILED: %s\n", f.Name, f.Reason)
	}
}
