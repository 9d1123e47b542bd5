// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// ListBookings fetches bookings visible to the authenticated user
// (admins see everyone's, parents their own).
func (c *Client) ListBookings(ctx context.Context, token string) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", token, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking creates a booking. TotalPrice is computed by the caller
// before submission; the API stores it as sent.
func (c *Client) CreateBooking(ctx context.Context, token string, booking model.Booking) (*model.Booking, error) {
	var created model.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", token, booking, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBooking updates a booking.
func (c *Client) UpdateBooking(ctx context.Context, token string, id int64, booking model.Booking) (*model.Booking, error) {
	var updated model.Booking
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d", id), token, booking, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBooking deletes a booking.
func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), token, nil, nil)
}
