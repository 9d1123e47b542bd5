// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Event statuses.
const (
	EventStatusPending   = "pending"
	EventStatusConfirmed = "confirmed"
	EventStatusCancelled = "cancelled"
)

// Event represents a party event created by a user.
type Event struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	UserID      int64  `json:"user_id,omitempty"`
	UserName    string `json:"user_name,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}
