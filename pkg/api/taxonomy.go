package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sumeetsaini/well/pkg/core"
)

// FetchTaxonomy retrieves the raw taxonomy document.
func (c *Client) FetchTaxonomy(ctx context.Context) (Response, error) {
	return c.do(ctx, http.MethodGet, "/taxonomy", nil, nil)
}

// ListTaxonomy fetches and decodes the category tree, preserving the order
// the server sent. On a non-success status the Response is returned for
// reporting and the tree is nil.
func (c *Client) ListTaxonomy(ctx context.Context) (*core.Taxonomy, Response, error) {
	resp, err := c.FetchTaxonomy(ctx)
	if err != nil || !resp.OK() {
		return nil, resp, err
	}
	tax, err := core.ParseTaxonomyJSON(resp.Body)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to decode taxonomy: %w", err)
	}
	return tax, resp, nil
}

// ReplaceTaxonomy replaces the whole tree with a {content} payload holding
// the re-serialized document.
func (c *Client) ReplaceTaxonomy(ctx context.Context, payload any) (Response, error) {
	return c.do(ctx, http.MethodPut, "/taxonomy", nil, payload)
}

// CreateCategory appends one category node to the remote tree.
func (c *Client) CreateCategory(ctx context.Context, name string) (Response, error) {
	return c.do(ctx, http.MethodPost, "/taxonomy/categories", nil, map[string]string{"name": name})
}

// CreateSubcategory appends one subcategory node under an existing category.
func (c *Client) CreateSubcategory(ctx context.Context, category, name string) (Response, error) {
	path := "/taxonomy/categories/" + url.PathEscape(category) + "/subcategories"
	return c.do(ctx, http.MethodPost, path, nil, map[string]string{"name": name})
}
