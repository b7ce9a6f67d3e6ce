package odooapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/joergsteffens/odoo-cli/src/version"
)

const (
	apiPrefix       = "/json/2"
	contentTypeJSON = "application/json"

	// maxErrorBody bounds how much of an error response body we keep.
	maxErrorBody = 512
)

var userAgent = "odoo-cli/" + version.Version

// HTTPClient talks to a real odoo server over HTTPS.
type HTTPClient struct {
	conn   Connection
	client *http.Client
	logger *logrus.Entry
}

var _ Client = (*HTTPClient)(nil)

// New returns an HTTPClient for the given connection. A zero timeout means
// no client-side timeout, matching the historical behavior of the tool.
func New(conn Connection, timeout time.Duration) (*HTTPClient, error) {
	if conn.BaseURL == "" {
		return nil, fmt.Errorf("connection: base url must not be empty")
	}
	if !strings.HasPrefix(conn.BaseURL, "http://") && !strings.HasPrefix(conn.BaseURL, "https://") {
		return nil, fmt.Errorf("connection: base url must start with http:// or https://, got %q", conn.BaseURL)
	}
	if conn.APIKey == "" {
		return nil, fmt.Errorf("connection: api key must not be empty")
	}
	return &HTTPClient{
		conn:   conn,
		client: &http.Client{Timeout: timeout},
		logger: logrus.WithField("component", "odooapi"),
	}, nil
}

// Call performs POST <base>/json/2/<model>/<method>. kwargs become the JSON
// request body; nil sends an empty object. The decoded response is returned
// verbatim, any transport, status, or decode problem as a wrapped error.
func (c *HTTPClient) Call(ctx context.Context, model, method string, kwargs map[string]any) (json.RawMessage, error) {
	url := c.conn.BaseURL + apiPrefix + "/" + model + "/" + method
	return c.post(ctx, url, model, method, kwargs, true)
}

func (c *HTTPClient) post(ctx context.Context, url, model, method string, kwargs map[string]any, authenticated bool) (json.RawMessage, error) {
	if kwargs == nil {
		kwargs = map[string]any{}
	}
	body, err := json.Marshal(kwargs)
	if err != nil {
		return nil, fmt.Errorf("api call failed: %s/%s: encode request: %w", model, method, err)
	}

	c.logger.WithFields(logrus.Fields{"url": url, "body": string(body)}).Debug("request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("api call failed: %s/%s: %w", model, method, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", contentTypeJSON)
	if authenticated {
		req.Header.Set("Authorization", "bearer "+c.conn.APIKey)
		if c.conn.Database != "" {
			req.Header.Set("X-Odoo-Database", c.conn.Database)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call failed: %s/%s: %w", model, method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			Model:      model,
			Method:     method,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	var result json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("api call failed: %s/%s: decode response: %w", model, method, err)
	}
	return result, nil
}

// SearchRead calls <model>/search_read with the query's non-zero options.
func (c *HTTPClient) SearchRead(ctx context.Context, model string, q SearchQuery) ([]Record, error) {
	raw, err := c.Call(ctx, model, "search_read", q.kwargs())
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("api call failed: %s/search_read: unexpected result shape: %w", model, err)
	}
	return records, nil
}

func (q SearchQuery) kwargs() map[string]any {
	kw := map[string]any{}
	if q.Domain != nil {
		kw["domain"] = q.Domain
	} else {
		kw["domain"] = []any{}
	}
	if q.Fields != nil {
		kw["fields"] = q.Fields
	}
	if q.Order != "" {
		kw["order"] = q.Order
	}
	if q.Limit > 0 {
		kw["limit"] = q.Limit
	}
	return kw
}

// Databases lists available databases via <base>/web/database/list. The
// endpoint needs no authentication and answers with a jsonrpc envelope; only
// its result field is of interest.
func (c *HTTPClient) Databases(ctx context.Context) ([]string, error) {
	raw, err := c.post(ctx, c.conn.BaseURL+"/web/database/list", "web", "database/list", nil, false)
	if err != nil {
		return nil, err
	}
	var envelope struct {
		Result []string `json:"result"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("api call failed: web/database/list: unexpected result shape: %w", err)
	}
	return envelope.Result, nil
}

// UserContext answers "who am I" via res.users/context_get.
func (c *HTTPClient) UserContext(ctx context.Context) (json.RawMessage, error) {
	return c.Call(ctx, "res.users", "context_get", nil)
}
