// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Booking types.
const (
	BookingTypeCostume = "costume"
	BookingTypePackage = "package"
	BookingTypeBoth    = "both"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Booking represents a reservation of a costume, a package, or both.
type Booking struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	UserName        string            `json:"user_name,omitempty"`
	UserEmail       string            `json:"user_email,omitempty"`
	BookingType     string            `json:"booking_type"`
	EventDate       string            `json:"event_date"`
	EventTime       string            `json:"event_time,omitempty"`
	EventLocation   string            `json:"event_location,omitempty"`
	EventAddress    string            `json:"event_address,omitempty"`
	NumChildren     int               `json:"num_children,omitempty"`
	CostumeID       int64             `json:"costume_id,omitempty"`
	PackageID       int64             `json:"package_id,omitempty"`
	Costume         *Costume          `json:"costume,omitempty"`
	Package         *AnimationPackage `json:"package,omitempty"`
	SpecialRequests string            `json:"special_requests,omitempty"`
	TotalPrice      float64           `json:"total_price"`
	Status          string            `json:"status,omitempty"`
	PaymentStatus   string            `json:"payment_status,omitempty"`
	CreatedAt       string            `json:"created_at,omitempty"`
	UpdatedAt       string            `json:"updated_at,omitempty"`
}

// IncludesCostume returns true if the booking reserves a costume.
func IncludesCostume(bookingType string) bool {
	return bookingType == BookingTypeCostume || bookingType == BookingTypeBoth
}

// IncludesPackage returns true if the booking reserves an animation package.
func IncludesPackage(bookingType string) bool {
	return bookingType == BookingTypePackage || bookingType == BookingTypeBoth
}

// ComputeTotal calculates the booking total from the selected items.
// A costume contributes its daily rental price, a package its flat price.
// Items not covered by the booking type are ignored even if passed.
func ComputeTotal(bookingType string, costume *Costume, pkg *AnimationPackage) float64 {
	var total float64
	if IncludesCostume(bookingType) && costume != nil {
		total += costume.PricePerDay
	}
	if IncludesPackage(bookingType) && pkg != nil {
		total += pkg.Price
	}
	return total
}
