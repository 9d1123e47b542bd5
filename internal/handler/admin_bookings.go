// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"slices"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

func bookingStatuses() []string {
	return []string{
		model.BookingStatusPending,
		model.BookingStatusConfirmed,
		model.BookingStatusCompleted,
		model.BookingStatusCancelled,
	}
}

func paymentStatuses() []string {
	return []string{
		model.PaymentStatusPending,
		model.PaymentStatusPaid,
		model.PaymentStatusRefunded,
	}
}

// ListBookings renders all bookings for the admin.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.client.ListBookings(r.Context(), h.sessions.Token(r.Context()))
	if err != nil {
		flashError(w, r, h.renderer, RouteAdmin, api.Message(err, "No se pudieron cargar las reservas"))
		return
	}

	h.render(w, r, "admin/bookings", "Reservas", map[string]any{
		"Bookings":        bookings,
		"Statuses":        bookingStatuses(),
		"PaymentStatuses": paymentStatuses(),
	})
}

// UpdateBookingStatus changes a booking's status.
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminBookings) {
		return
	}

	status := r.PostFormValue("status")
	if !slices.Contains(bookingStatuses(), status) {
		flashError(w, r, h.renderer, RouteAdminBookings, "Estado inválido")
		return
	}

	booking := model.Booking{Status: status}
	if _, err := h.client.UpdateBooking(r.Context(), h.sessions.Token(r.Context()), id, booking); err != nil {
		flashError(w, r, h.renderer, RouteAdminBookings, api.Message(err, "No se pudo actualizar la reserva"))
		return
	}

	http.Redirect(w, r, RouteAdminBookings, http.StatusSeeOther)
}

// UpdateBookingPayment changes a booking's payment status.
func (h *AdminHandler) UpdateBookingPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminBookings) {
		return
	}

	status := r.PostFormValue("payment_status")
	if !slices.Contains(paymentStatuses(), status) {
		flashError(w, r, h.renderer, RouteAdminBookings, "Estado de pago inválido")
		return
	}

	booking := model.Booking{PaymentStatus: status}
	if _, err := h.client.UpdateBooking(r.Context(), h.sessions.Token(r.Context()), id, booking); err != nil {
		flashError(w, r, h.renderer, RouteAdminBookings, api.Message(err, "No se pudo actualizar el pago"))
		return
	}

	http.Redirect(w, r, RouteAdminBookings, http.StatusSeeOther)
}
