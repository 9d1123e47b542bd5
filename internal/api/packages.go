// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// ListPackages fetches the animation package catalog.
func (c *Client) ListPackages(ctx context.Context) ([]model.AnimationPackage, error) {
	var packages []model.AnimationPackage
	if err := c.do(ctx, http.MethodGet, "/packages", "", nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetPackage fetches one animation package by ID.
func (c *Client) GetPackage(ctx context.Context, id int64) (*model.AnimationPackage, error) {
	var pkg model.AnimationPackage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/packages/%d", id), "", nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

// CreatePackage creates an animation package. Admin only.
func (c *Client) CreatePackage(ctx context.Context, token string, pkg model.AnimationPackage) (*model.AnimationPackage, error) {
	var created model.AnimationPackage
	if err := c.do(ctx, http.MethodPost, "/packages", token, pkg, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePackage updates an animation package. Admin only.
func (c *Client) UpdatePackage(ctx context.Context, token string, id int64, pkg model.AnimationPackage) (*model.AnimationPackage, error) {
	var updated model.AnimationPackage
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/packages/%d", id), token, pkg, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePackage deletes an animation package. Admin only.
func (c *Client) DeletePackage(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/packages/%d", id), token, nil, nil)
}
