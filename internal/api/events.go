// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// ListEvents fetches events visible to the authenticated user.
func (c *Client) ListEvents(ctx context.Context, token string) ([]model.Event, error) {
	var events []model.Event
	if err := c.do(ctx, http.MethodGet, "/events", token, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates an event for the authenticated user.
func (c *Client) CreateEvent(ctx context.Context, token string, event model.Event) (*model.Event, error) {
	var created model.Event
	if err := c.do(ctx, http.MethodPost, "/events", token, event, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateEvent updates an event.
func (c *Client) UpdateEvent(ctx context.Context, token string, id int64, event model.Event) (*model.Event, error) {
	var updated model.Event
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/events/%d", id), token, event, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteEvent deletes an event.
func (c *Client) DeleteEvent(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/events/%d", id), token, nil, nil)
}
