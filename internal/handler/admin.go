// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/ordering"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/service"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
	"github.com/jeanAguiluz/diverkids-go/internal/store"
)

// AdminHandler handles the admin area: dashboard, catalog management with
// display ordering, bookings, contact messages and the event log.
type AdminHandler struct {
	catalog  *service.CatalogService
	client   *api.Client
	renderer *render.Renderer
	sessions *session.Store
	ordering *ordering.Store
	queries  *store.Queries
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(catalog *service.CatalogService, client *api.Client, renderer *render.Renderer,
	sessions *session.Store, ord *ordering.Store, queries *store.Queries) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		client:   client,
		renderer: renderer,
		sessions: sessions,
		ordering: ord,
		queries:  queries,
	}
}

// Dashboard renders the admin overview with catalog and workload counts.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := h.sessions.Token(ctx)

	costumes, _ := h.catalog.Costumes(ctx, api.CostumeFilter{})
	packages, _ := h.catalog.Packages(ctx)
	bookings, _ := h.client.ListBookings(ctx, token)
	contacts, _ := h.client.ListContacts(ctx, token)

	pending := 0
	for _, c := range contacts {
		if c.Status == model.ContactStatusPending {
			pending++
		}
	}

	h.render(w, r, "admin/dashboard", "Panel de administración", map[string]any{
		"CostumeCount":    len(costumes),
		"PackageCount":    len(packages),
		"BookingCount":    len(bookings),
		"PendingContacts": pending,
	})
}

func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	renderPage(w, r, h.renderer, h.sessions.Manager(), page, title, data)
}
