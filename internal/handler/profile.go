// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// ProfileHandler renders the profile page.
type ProfileHandler struct {
	renderer *render.Renderer
	sessions *session.Store
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(renderer *render.Renderer, sessions *session.Store) *ProfileHandler {
	return &ProfileHandler{renderer: renderer, sessions: sessions}
}

// Show renders the current user's profile.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.sessions.Manager(), "pages/profile", "Mi perfil", nil)
}
