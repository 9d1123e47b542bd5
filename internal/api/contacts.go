// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// CreateContact submits a public contact-form message. No authentication.
func (c *Client) CreateContact(ctx context.Context, contact model.Contact) (string, error) {
	var resp msgResponse
	if err := c.do(ctx, http.MethodPost, "/contact", "", contact, &resp); err != nil {
		return "", err
	}
	return resp.Msg, nil
}

// ListContacts fetches all contact messages. Admin only.
func (c *Client) ListContacts(ctx context.Context, token string) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := c.do(ctx, http.MethodGet, "/contacts", token, nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// UpdateContactStatus changes a contact message's status. Admin only.
func (c *Client) UpdateContactStatus(ctx context.Context, token string, id int64, status string) error {
	body := map[string]string{"status": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/contact/%d", id), token, body, nil)
}

// DeleteContact deletes a contact message. Admin only.
func (c *Client) DeleteContact(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/contact/%d", id), token, nil, nil)
}
