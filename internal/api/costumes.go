// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// CostumeFilter narrows a costume listing.
type CostumeFilter struct {
	Category  string
	Available *bool
}

func (f CostumeFilter) query() string {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Available != nil {
		q.Set("available", fmt.Sprintf("%t", *f.Available))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListCostumes fetches the costume catalog, optionally filtered.
func (c *Client) ListCostumes(ctx context.Context, filter CostumeFilter) ([]model.Costume, error) {
	var costumes []model.Costume
	if err := c.do(ctx, http.MethodGet, "/costumes"+filter.query(), "", nil, &costumes); err != nil {
		return nil, err
	}
	return costumes, nil
}

// GetCostume fetches one costume by ID.
func (c *Client) GetCostume(ctx context.Context, id int64) (*model.Costume, error) {
	var costume model.Costume
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/costumes/%d", id), "", nil, &costume); err != nil {
		return nil, err
	}
	return &costume, nil
}

// CreateCostume creates a costume. Admin only.
func (c *Client) CreateCostume(ctx context.Context, token string, costume model.Costume) (*model.Costume, error) {
	var created model.Costume
	if err := c.do(ctx, http.MethodPost, "/costumes", token, costume, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCostume updates a costume. Admin only.
func (c *Client) UpdateCostume(ctx context.Context, token string, id int64, costume model.Costume) (*model.Costume, error) {
	var updated model.Costume
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/costumes/%d", id), token, costume, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCostume deletes a costume. Admin only.
func (c *Client) DeleteCostume(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/costumes/%d", id), token, nil, nil)
}
