// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Costume categories offered in the rental catalog.
const (
	CategorySuperheroes = "Superhéroes"
	CategoryPrincesses  = "Princesas"
	CategoryCharacters  = "Personajes"
)

// Costume represents a rentable costume in the catalog.
type Costume struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Category      string  `json:"category,omitempty"`
	Size          string  `json:"size,omitempty"`
	PricePerDay   float64 `json:"price_per_day"`
	ImageURL      string  `json:"image_url,omitempty"`
	Available     bool    `json:"available"`
	StockQuantity int     `json:"stock_quantity"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// CostumeCategories returns the selectable catalog categories.
func CostumeCategories() []string {
	return []string{CategorySuperheroes, CategoryPrincesses, CategoryCharacters}
}

// CostumeSizes returns the selectable costume sizes.
func CostumeSizes() []string {
	return []string{"XS", "S", "M", "L", "XL"}
}
