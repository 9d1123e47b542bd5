// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Contact message statuses.
const (
	ContactStatusPending = "pending"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact represents a contact-form message.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ContactStatuses returns the valid contact message statuses.
func ContactStatuses() []string {
	return []string{ContactStatusPending, ContactStatusRead, ContactStatusReplied}
}
