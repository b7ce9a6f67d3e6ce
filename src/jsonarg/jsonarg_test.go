package jsonarg_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joergsteffens/odoo-cli/src/jsonarg"
)

func TestParse_Literal(t *testing.T) {
	got, err := jsonarg.Parse(`{"order": "id ASC", "limit": 5}`, nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got["order"] != "id ASC" {
		t.Fatalf("order = %v, want id ASC", got["order"])
	}
	if got["limit"] != float64(5) {
		t.Fatalf("limit = %v, want 5", got["limit"])
	}
}

func TestParse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	if err := os.WriteFile(path, []byte(`{"fields": ["id", "name"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := jsonarg.Parse(path, nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, ok := got["fields"]; !ok {
		t.Fatalf("fields missing from %v", got)
	}
}

func TestParse_Stdin(t *testing.T) {
	got, err := jsonarg.Parse("-", strings.NewReader(`{"a": 1}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got["a"] != float64(1) {
		t.Fatalf("a = %v, want 1", got["a"])
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := jsonarg.Parse(`{not json`, nil); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestParseKeyValues(t *testing.T) {
	got, err := jsonarg.ParseKeyValues([]string{"name=Example User", "email=user@example.com"})
	if err != nil {
		t.Fatalf("ParseKeyValues error: %v", err)
	}
	if got["name"] != "Example User" || got["email"] != "user@example.com" {
		t.Fatalf("unexpected result: %v", got)
	}
}

func TestParseKeyValues_Invalid(t *testing.T) {
	if _, err := jsonarg.ParseKeyValues([]string{"novalue"}); err == nil {
		t.Fatalf("expected error for pair without =")
	}
}

func TestMerge_ArgsOverwriteJSON(t *testing.T) {
	payload := map[string]any{"order": "id DESC", "limit": float64(5)}
	args := map[string]any{"order": "id ASC"}
	got := jsonarg.Merge(payload, args)
	if got["order"] != "id ASC" {
		t.Fatalf("order = %v, want id ASC", got["order"])
	}
	if got["limit"] != float64(5) {
		t.Fatalf("limit = %v, want 5", got["limit"])
	}
}

func TestMerge_NilInputs(t *testing.T) {
	if got := jsonarg.Merge(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("Merge(nil, nil) = %v, want empty map", got)
	}
}
