package api

import (
	"context"
	"net/http"

	"github.com/sumeetsaini/well/pkg/core"
)

// FetchLedger retrieves the full transaction ledger as one tabular blob.
// The client never parses individual transactions.
func (c *Client) FetchLedger(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/ledger", nil, nil)
}

// ReplaceLedger replaces the ledger wholesale with a {content} payload.
func (c *Client) ReplaceLedger(ctx context.Context, payload any) (Response, error) {
	return c.do(ctx, http.MethodPut, "/ledger", nil, payload)
}

// CreateEntry appends one financial entry to the ledger.
func (c *Client) CreateEntry(ctx context.Context, e core.Entry) (Response, error) {
	return c.do(ctx, http.MethodPost, "/ledger/entries", nil, e)
}
