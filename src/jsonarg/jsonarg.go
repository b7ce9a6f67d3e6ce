// Package jsonarg resolves JSON payloads given on the command line. A value
// may be a JSON literal, a path to a file containing JSON, or "-" for stdin.
package jsonarg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse interprets value as "-" (read stdin), an existing file path, or a
// JSON literal, in that order, and decodes it into a JSON object.
func Parse(value string, stdin io.Reader) (map[string]any, error) {
	if value == "-" {
		return decode(stdin, "stdin")
	}
	if st, err := os.Stat(value); err == nil && st.Mode().IsRegular() {
		f, err := os.Open(value)
		if err != nil {
			return nil, fmt.Errorf("open json file %s: %w", value, err)
		}
		defer f.Close()
		return decode(f, value)
	}
	return decode(strings.NewReader(value), "argument")
}

func decode(r io.Reader, source string) (map[string]any, error) {
	var out map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("invalid json (%s): %w", source, err)
	}
	return out, nil
}

// ParseKeyValues converts key=value pairs into a map. Values stay strings;
// they overlay any JSON payload given alongside them.
func ParseKeyValues(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q; expected key=value", pair)
		}
		out[key] = val
	}
	return out, nil
}

// Merge overlays args on top of payload. Either may be nil.
func Merge(payload, args map[string]any) map[string]any {
	if payload == nil && args == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(payload)+len(args))
	for k, v := range payload {
		out[k] = v
	}
	for k, v := range args {
		out[k] = v
	}
	return out
}
