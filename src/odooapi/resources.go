package odooapi

import (
	"context"
	"encoding/json"
)

// The helpers below mirror the server-side convenience endpoints. They are
// free functions over Client so every implementation gets them.

// List returns id, name and display_name of all records of a model, id ASC.
func List(ctx context.Context, c Client, model string) ([]Record, error) {
	return c.SearchRead(ctx, model, SearchQuery{
		Fields: []string{"id", "name", "display_name"},
		Order:  "id ASC",
	})
}

// DumpModel returns all records of a model with all fields.
func DumpModel(ctx context.Context, c Client, model string) ([]Record, error) {
	return c.SearchRead(ctx, model, SearchQuery{})
}

// Show returns the single record with the given id. Unless verbose is set,
// empty-ish field values (zero, empty string, empty list, null) are dropped
// to keep the output readable.
func Show(ctx context.Context, c Client, model, id string, verbose bool) ([]Record, error) {
	records, err := c.SearchRead(ctx, model, SearchQuery{
		Domain: []any{[]any{"id", "=", id}},
	})
	if err != nil {
		return nil, err
	}
	if verbose {
		return records, nil
	}
	out := make([]Record, 0, len(records))
	for _, record := range records {
		filtered := Record{}
		for k, v := range record {
			if !isEmptyValue(v) {
				filtered[k] = v
			}
		}
		out = append(out, filtered)
	}
	return out, nil
}

func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		// odoo serializes empty char and many2one fields as false.
		return !val
	case string:
		return val == ""
	case float64:
		return val == 0
	case []any:
		return len(val) == 0
	}
	return false
}

// Reinit asks odoo to recalculate a model's computed fields.
func Reinit(ctx context.Context, c Client, model string) (json.RawMessage, error) {
	return c.Call(ctx, model, "recompute_fields", nil)
}

// Create creates a new record from the given values.
func Create(ctx context.Context, c Client, model string, values map[string]any) (json.RawMessage, error) {
	return c.Call(ctx, model, "create", map[string]any{
		"vals_list": []map[string]any{values},
	})
}

// MailAdd imports a full email message into odoo. model selects the model
// the mail gets processed into (e.g. "crm.lead"); empty lets odoo decide.
func MailAdd(ctx context.Context, c Client, model, message string) (json.RawMessage, error) {
	kwargs := map[string]any{"message": message}
	if model != "" {
		kwargs["model"] = model
	} else {
		kwargs["model"] = false
	}
	return c.Call(ctx, "mail.thread", "message_process", kwargs)
}

// Customers lists current customers (name and email, capped at 10).
func Customers(ctx context.Context, c Client) ([]Record, error) {
	return c.SearchRead(ctx, "res.partner", SearchQuery{
		Domain: []any{[]any{"customer_rank", ">", 0}},
		Fields: []string{"name", "email"},
		Limit:  10,
	})
}

// ActiveSubscriptions lists all active subscriptions.
func ActiveSubscriptions(ctx context.Context, c Client) (json.RawMessage, error) {
	return c.Call(ctx, "res.partner", "get_active_subscriptions_api", nil)
}

// SubscriptionCredentials shows credentials of active subscriptions.
// evaluation nil means both kinds, true only evaluation subscriptions,
// false only regular ones.
func SubscriptionCredentials(ctx context.Context, c Client, evaluation *bool) (json.RawMessage, error) {
	kwargs := map[string]any{}
	if evaluation != nil {
		kwargs["evaluation"] = *evaluation
	}
	return c.Call(ctx, "res.partner", "get_subscription_credentials_api", kwargs)
}

// SupportCustomers lists all customers with an active support contract.
func SupportCustomers(ctx context.Context, c Client) (json.RawMessage, error) {
	return c.Call(ctx, "res.partner", "get_support_customers_api", nil)
}
