package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joergsteffens/odoo-cli/src/cli"
)

func TestCallCmd_EndToEnd(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"uid": 2}`))
	}))
	defer srv.Close()

	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{
		"--url", srv.URL, "--apikey", "k",
		"call", "res.partner", "search_read",
		"--json", `{"order": "id DESC", "limit": 3}`,
		"--args", "order=id ASC",
	})

	_, err := cmd.ExecuteC()
	require.NoError(t, err)

	assert.Equal(t, "/json/2/res.partner/search_read", gotPath)
	// --args overwrite the json payload
	assert.Equal(t, "id ASC", gotBody["order"])
	assert.Equal(t, float64(3), gotBody["limit"])
	assert.JSONEq(t, `{"uid": 2}`, out.String())
}

func TestCallCmd_DbFlagAlias(t *testing.T) {
	var gotDB string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDB = r.Header.Get("X-Odoo-Database")
		w.Write([]byte(`null`))
	}))
	defer srv.Close()

	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{
		"--url", srv.URL, "--apikey", "k", "--db", "mydb",
		"call", "res.users", "context_get",
	})

	_, err := cmd.ExecuteC()
	require.NoError(t, err)
	assert.Equal(t, "mydb", gotDB)
}

func TestCallCmd_MissingAPIKey(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{"--url", "https://example.com", "call", "res.users", "context_get"})

	_, err := cmd.ExecuteC()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestConfigDumpCmd_RejectsMissingOutputDirectory(t *testing.T) {
	var out, errBuf bytes.Buffer
	cmd := cli.NewRootCmd(&out, &errBuf)
	cmd.SetArgs([]string{
		"--url", "https://example.com", "--apikey", "k",
		"config-dump", "-o", "/does/not/exist",
	})

	_, err := cmd.ExecuteC()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "existing directory")
}
