// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain records exchanged with the DiverKids API
// including User, Costume, AnimationPackage, Contact, Event and Booking.
package model

// User roles.
const (
	RoleAdmin  = "admin"
	RoleParent = "parent"
)

// User represents an authenticated DiverKids user as returned by the API.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// IsAdmin returns true if the user has admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
