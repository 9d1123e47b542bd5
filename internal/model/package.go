// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "strings"

// AnimationPackage represents a party animation package.
type AnimationPackage struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	DurationHours int     `json:"duration_hours"`
	Price         float64 `json:"price"`
	Includes      string  `json:"includes,omitempty"`
	MaxChildren   int     `json:"max_children,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Available     bool    `json:"available"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// ParseIncludes splits the free-text "includes" field into individual items.
// Items are separated by newlines or commas; blank entries are dropped.
func ParseIncludes(includes string) []string {
	var items []string
	for _, line := range strings.FieldsFunc(includes, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	}) {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IncludesList returns the package's included services as a list.
func (p *AnimationPackage) IncludesList() []string {
	return ParseIncludes(p.Includes)
}
