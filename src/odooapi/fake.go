package odooapi

import (
	"context"
	"encoding/json"
	"fmt"
)

// FakeClient is an in-memory implementation for unit tests.
type FakeClient struct {
	// Models maps model name to the records search_read returns for it.
	Models map[string][]Record
	// Responses maps "model/method" to a canned Call result.
	Responses map[string]json.RawMessage
	// Errs maps model (for SearchRead) or "model/method" (for Call) to an
	// error to inject.
	Errs map[string]error
	// DatabaseNames is what Databases returns.
	DatabaseNames []string

	// Calls records every Call invocation as "model/method".
	Calls []string
	// LastKwargs holds the kwargs of the most recent Call.
	LastKwargs map[string]any
}

var _ Client = (*FakeClient)(nil)

func NewFake() *FakeClient {
	return &FakeClient{
		Models:    map[string][]Record{},
		Responses: map[string]json.RawMessage{},
		Errs:      map[string]error{},
	}
}

func (f *FakeClient) Call(ctx context.Context, model, method string, kwargs map[string]any) (json.RawMessage, error) {
	key := model + "/" + method
	f.Calls = append(f.Calls, key)
	f.LastKwargs = kwargs
	if err := f.Errs[key]; err != nil {
		return nil, err
	}
	if resp, ok := f.Responses[key]; ok {
		return resp, nil
	}
	if method == "search_read" {
		return json.Marshal(f.Models[model])
	}
	return nil, fmt.Errorf("api call failed: %s: no fake response configured", key)
}

func (f *FakeClient) SearchRead(ctx context.Context, model string, q SearchQuery) ([]Record, error) {
	f.Calls = append(f.Calls, model+"/search_read")
	if err := f.Errs[model]; err != nil {
		return nil, err
	}
	return f.Models[model], nil
}

func (f *FakeClient) Databases(ctx context.Context) ([]string, error) {
	return f.DatabaseNames, nil
}

func (f *FakeClient) UserContext(ctx context.Context) (json.RawMessage, error) {
	return f.Call(ctx, "res.users", "context_get", nil)
}

func (f *FakeClient) ConfigDump(ctx context.Context, opts DumpOptions) error {
	return configDump(ctx, f, nil, opts)
}
