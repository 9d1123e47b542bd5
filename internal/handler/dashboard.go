// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"time"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// recentLimit caps the recent events and bookings shown on the dashboard.
const recentLimit = 3

// DashboardHandler renders the authenticated user's personal dashboard.
type DashboardHandler struct {
	client   *api.Client
	renderer *render.Renderer
	sessions *session.Store
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(client *api.Client, renderer *render.Renderer, sessions *session.Store) *DashboardHandler {
	return &DashboardHandler{client: client, renderer: renderer, sessions: sessions}
}

// Show renders event and booking statistics with the most recent of each.
// Fetch failures degrade to empty sections, like the homepage.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	token := h.sessions.Token(r.Context())

	events, err := h.client.ListEvents(r.Context(), token)
	if err != nil {
		events = nil
	}
	bookings, err := h.client.ListBookings(r.Context(), token)
	if err != nil {
		bookings = nil
	}

	today := time.Now().Truncate(24 * time.Hour)
	upcoming := 0
	for _, e := range events {
		if d, ok := parseEventDate(e.Date); ok && !d.Before(today) {
			upcoming++
		}
	}

	pending := 0
	for _, b := range bookings {
		if b.Status == model.BookingStatusPending {
			pending++
		}
	}

	recentEvents := events
	if len(recentEvents) > recentLimit {
		recentEvents = recentEvents[:recentLimit]
	}
	recentBookings := bookings
	if len(recentBookings) > recentLimit {
		recentBookings = recentBookings[:recentLimit]
	}

	renderPage(w, r, h.renderer, h.sessions.Manager(), "pages/dashboard", "Mi panel", map[string]any{
		"TotalEvents":     len(events),
		"UpcomingEvents":  upcoming,
		"TotalBookings":   len(bookings),
		"PendingBookings": pending,
		"RecentEvents":    recentEvents,
		"RecentBookings":  recentBookings,
	})
}

// parseEventDate reads the date part of the API's date strings, which come
// either bare ("2026-10-20") or as a full timestamp.
func parseEventDate(s string) (time.Time, bool) {
	if len(s) < 10 {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
