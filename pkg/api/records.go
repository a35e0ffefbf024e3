package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sumeetsaini/well/pkg/core"
)

// FetchRecord retrieves the live body for one record type.
func (c *Client) FetchRecord(ctx context.Context, t core.RecordType) (Response, error) {
	q := url.Values{"type": {string(t)}}
	return c.do(ctx, http.MethodGet, "", q, nil)
}

// CreateRecord writes a new record body.
func (c *Client) CreateRecord(ctx context.Context, t core.RecordType, body string) (Response, error) {
	return c.do(ctx, http.MethodPost, "", nil, core.Record{Type: t, Body: body})
}

// ReplaceRecord replaces a record wholesale. The payload carries the
// {type, content} shape built by the reconcile kind.
func (c *Client) ReplaceRecord(ctx context.Context, payload any) (Response, error) {
	return c.do(ctx, http.MethodPut, "", nil, payload)
}
