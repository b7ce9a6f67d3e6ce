package odooapi

import (
	"context"
	"encoding/json"
	"fmt"
)

// Connection holds everything needed to talk to one odoo server.
// Loaded once at startup and never mutated.
type Connection struct {
	BaseURL  string
	APIKey   string
	Database string // optional; sent as X-Odoo-Database when set
}

// Client is a narrow interface over the odoo /json/2 API used by our app.
// Keep it small and focused on what we actually need so it stays fakeable.
type Client interface {
	// Call performs POST <base>/json/2/<model>/<method> with kwargs as the
	// JSON body and returns the raw decoded response.
	Call(ctx context.Context, model, method string, kwargs map[string]any) (json.RawMessage, error)

	// SearchRead is sugar over Call(model, "search_read", ...). Zero-valued
	// options are omitted from the request.
	SearchRead(ctx context.Context, model string, q SearchQuery) ([]Record, error)

	// Databases lists the databases the server exposes. Unauthenticated.
	Databases(ctx context.Context) ([]string, error)

	// UserContext returns the calling user's context (res.users/context_get).
	UserContext(ctx context.Context) (json.RawMessage, error)

	// ConfigDump exports the configuration model set as one JSON file per
	// model, or prints them when no output directory is given.
	ConfigDump(ctx context.Context, opts DumpOptions) error
}

// SearchQuery carries the optional arguments of a search_read call.
type SearchQuery struct {
	Domain []any
	Fields []string
	Order  string
	Limit  int
}

// Record is one row of a search_read result.
type Record map[string]any

// APIError is returned for non-2xx responses, carrying the status and a
// snippet of the response body for diagnostics.
type APIError struct {
	Model      string
	Method     string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api call failed: %s/%s: status %d: %s", e.Model, e.Method, e.StatusCode, e.Body)
}
