// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

func bookingRouter(env *testEnv) http.Handler {
	h := NewBookingHandler(env.catalog, env.client, env.renderer, env.sessions)
	return env.router(func(r chi.Router) {
		r.Post("/bookings", h.Create)
		r.Post("/bookings/{id}/cancel", h.Cancel)
	})
}

func TestCreateBookingRecomputesTotal(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/costumes/5", serveJSON(model.Costume{
		ID: 5, Name: "Spiderman", PricePerDay: 15000,
	}))
	env.mux.HandleFunc("/packages/7", serveJSON(model.AnimationPackage{
		ID: 7, Name: "Fiesta Mágica", Price: 80000, DurationHours: 3,
	}))

	var created model.Booking
	env.mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("decoding booking payload: %v", err)
		}
		serveJSON(created)(w, r)
	})

	r := bookingRouter(env)
	rec := postForm(t, r, "/bookings", url.Values{
		"costume_id":  {"5"},
		"package_id":  {"7"},
		"event_date":  {"2026-10-20"},
		"total_price": {"1"}, // submitted totals are ignored
	})
	wantRedirect(t, rec, "/bookings")

	if created.BookingType != model.BookingTypeBoth {
		t.Errorf("booking type = %q, want %q", created.BookingType, model.BookingTypeBoth)
	}
	if created.TotalPrice != 95000 {
		t.Errorf("total = %v, want 95000", created.TotalPrice)
	}
}

func TestCreateBookingRequiresSelection(t *testing.T) {
	env := newTestEnv(t)
	r := bookingRouter(env)

	rec := postForm(t, r, "/bookings", url.Values{"event_date": {"2026-10-20"}})
	wantRedirect(t, rec, "/bookings/new")
}

func TestCreateBookingRequiresEventDate(t *testing.T) {
	env := newTestEnv(t)
	r := bookingRouter(env)

	rec := postForm(t, r, "/bookings", url.Values{"costume_id": {"5"}})
	wantRedirect(t, rec, "/bookings/new")
}

func TestCancelBookingSendsCancelledStatus(t *testing.T) {
	env := newTestEnv(t)

	var updated model.Booking
	env.mux.HandleFunc("/bookings/9", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			t.Errorf("decoding booking payload: %v", err)
		}
		serveJSON(updated)(w, r)
	})

	r := bookingRouter(env)
	rec := postForm(t, r, "/bookings/9/cancel", url.Values{})
	wantRedirect(t, rec, "/bookings")

	if updated.Status != model.BookingStatusCancelled {
		t.Errorf("status = %q, want %q", updated.Status, model.BookingStatusCancelled)
	}
}

func TestUpdateBookingRecomputesTotal(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/costumes/5", serveJSON(model.Costume{
		ID: 5, Name: "Spiderman", PricePerDay: 15000,
	}))

	var updated model.Booking
	env.mux.HandleFunc("/bookings/9", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
			t.Errorf("decoding booking payload: %v", err)
		}
		serveJSON(updated)(w, r)
	})

	h := NewBookingHandler(env.catalog, env.client, env.renderer, env.sessions)
	r := env.router(func(r chi.Router) {
		r.Post("/bookings/{id}/edit", h.Update)
	})

	rec := postForm(t, r, "/bookings/9/edit", url.Values{
		"costume_id": {"5"},
		"event_date": {"2026-11-07"},
	})
	wantRedirect(t, rec, "/bookings")

	if updated.BookingType != model.BookingTypeCostume {
		t.Errorf("booking type = %q, want %q", updated.BookingType, model.BookingTypeCostume)
	}
	if updated.TotalPrice != 15000 {
		t.Errorf("total = %v, want 15000", updated.TotalPrice)
	}
}
