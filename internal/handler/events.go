// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// EventHandler handles the authenticated party-event pages.
type EventHandler struct {
	client   *api.Client
	renderer *render.Renderer
	sessions *session.Store
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(client *api.Client, renderer *render.Renderer, sessions *session.Store) *EventHandler {
	return &EventHandler{client: client, renderer: renderer, sessions: sessions}
}

// List renders the user's party events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.client.ListEvents(r.Context(), h.sessions.Token(r.Context()))
	if err != nil {
		flashError(w, r, h.renderer, RouteRoot, api.Message(err, "No se pudieron cargar tus eventos"))
		return
	}

	renderPage(w, r, h.renderer, h.sessions.Manager(), "pages/events", "Mis eventos",
		map[string]any{"Events": events})
}

// Create submits a new party event.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteEvents) {
		return
	}

	event := model.Event{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Date:        strings.TrimSpace(r.PostFormValue("date")),
		Time:        strings.TrimSpace(r.PostFormValue("time")),
		Location:    strings.TrimSpace(r.PostFormValue("location")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}
	if event.Title == "" || event.Date == "" {
		flashError(w, r, h.renderer, RouteEvents, "Indica al menos el título y la fecha")
		return
	}

	if _, err := h.client.CreateEvent(r.Context(), h.sessions.Token(r.Context()), event); err != nil {
		flashError(w, r, h.renderer, RouteEvents, api.Message(err, "No se pudo crear el evento"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteEvents, "Evento creado")
}

// Cancel marks one of the user's events as cancelled.
func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	event := model.Event{Status: model.EventStatusCancelled}
	if _, err := h.client.UpdateEvent(r.Context(), h.sessions.Token(r.Context()), id, event); err != nil {
		flashError(w, r, h.renderer, RouteEvents, api.Message(err, "No se pudo cancelar el evento"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteEvents, "Evento cancelado")
}

// Delete removes one of the user's events.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.client.DeleteEvent(r.Context(), h.sessions.Token(r.Context()), id); err != nil {
		flashError(w, r, h.renderer, RouteEvents, api.Message(err, "No se pudo eliminar el evento"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteEvents, "Evento eliminado")
}
