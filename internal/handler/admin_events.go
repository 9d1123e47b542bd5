// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
)

// eventLogLimit caps the number of entries shown on the event log page.
const eventLogLimit = 200

// EventLog renders the application event log (warnings and errors recorded
// by the logging handler).
func (h *AdminHandler) EventLog(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListEvents(r.Context(), eventLogLimit)
	if err != nil {
		logAndInternalError(w, "listing event log", "error", err)
		return
	}

	h.render(w, r, "admin/events", "Registro de eventos", map[string]any{"Events": events})
}
