// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"slices"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// ListContacts renders the contact message admin list.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.client.ListContacts(r.Context(), h.sessions.Token(r.Context()))
	if err != nil {
		flashError(w, r, h.renderer, RouteAdmin, api.Message(err, "No se pudieron cargar los mensajes"))
		return
	}

	h.render(w, r, "admin/contacts", "Mensajes de contacto", map[string]any{
		"Contacts": contacts,
		"Statuses": model.ContactStatuses(),
	})
}

// UpdateContactStatus changes a contact message's status.
func (h *AdminHandler) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminContacts) {
		return
	}

	status := r.PostFormValue("status")
	if !slices.Contains(model.ContactStatuses(), status) {
		flashError(w, r, h.renderer, RouteAdminContacts, "Estado inválido")
		return
	}

	if err := h.client.UpdateContactStatus(r.Context(), h.sessions.Token(r.Context()), id, status); err != nil {
		flashError(w, r, h.renderer, RouteAdminContacts, api.Message(err, "No se pudo actualizar el mensaje"))
		return
	}

	http.Redirect(w, r, RouteAdminContacts, http.StatusSeeOther)
}

// DeleteContact removes a contact message.
func (h *AdminHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.client.DeleteContact(r.Context(), h.sessions.Token(r.Context()), id); err != nil {
		flashError(w, r, h.renderer, RouteAdminContacts, api.Message(err, "No se pudo eliminar el mensaje"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteAdminContacts, "Mensaje eliminado")
}
