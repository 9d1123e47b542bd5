// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/ordering"
)

// ListCostumes renders the costume admin list in the persisted display order.
func (h *AdminHandler) ListCostumes(w http.ResponseWriter, r *http.Request) {
	costumes, err := h.catalog.Costumes(r.Context(), api.CostumeFilter{})
	if err != nil {
		flashError(w, r, h.renderer, RouteAdmin, api.Message(err, "No se pudieron cargar los disfraces"))
		return
	}

	order := h.ordering.LoadReconciled(r.Context(), ordering.CostumeOrderKey, costumeIDs(costumes))
	ordering.SortByOrder(costumes, order, func(c model.Costume) int64 { return c.ID })

	h.render(w, r, "admin/costumes", "Disfraces", map[string]any{"Costumes": costumes})
}

// MoveCostume shifts a costume one position up or down in the display order.
// Moves at the boundary and moves of unknown ids are no-ops.
func (h *AdminHandler) MoveCostume(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	dir, ok := ordering.ParseDirection(r.PostFormValue("direction"))
	if !ok {
		flashError(w, r, h.renderer, RouteAdminCostumes, "Dirección inválida")
		return
	}

	costumes, err := h.catalog.Costumes(r.Context(), api.CostumeFilter{})
	if err != nil {
		flashError(w, r, h.renderer, RouteAdminCostumes, api.Message(err, "No se pudieron cargar los disfraces"))
		return
	}

	order := h.ordering.LoadReconciled(r.Context(), ordering.CostumeOrderKey, costumeIDs(costumes))
	moved := ordering.Move(order, id, dir)
	if !ordering.Equal(order, moved) {
		if err := h.ordering.Save(r.Context(), ordering.CostumeOrderKey, moved); err != nil {
			flashError(w, r, h.renderer, RouteAdminCostumes, "No se pudo guardar el orden")
			return
		}
	}

	http.Redirect(w, r, RouteAdminCostumes, http.StatusSeeOther)
}

// NewCostumeForm renders the empty costume form.
func (h *AdminHandler) NewCostumeForm(w http.ResponseWriter, r *http.Request) {
	h.renderCostumeForm(w, r, &model.Costume{Available: true, StockQuantity: 1}, RouteAdminCostumes)
}

// CreateCostume creates a costume through the API and invalidates the
// cached listing.
func (h *AdminHandler) CreateCostume(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminCostumes) {
		return
	}

	costume, ok := h.costumeFromForm(w, r, RouteAdminCostumes+RouteSuffixNew)
	if !ok {
		return
	}

	if _, err := h.client.CreateCostume(r.Context(), h.sessions.Token(r.Context()), costume); err != nil {
		flashError(w, r, h.renderer, RouteAdminCostumes+RouteSuffixNew, api.Message(err, "No se pudo crear el disfraz"))
		return
	}

	h.catalog.InvalidateCostumes(r.Context())
	flashSuccess(w, r, h.renderer, RouteAdminCostumes, "Disfraz creado")
}

// EditCostumeForm renders the costume form prefilled from the API.
func (h *AdminHandler) EditCostumeForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	costume, err := h.catalog.Costume(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, RouteAdminCostumes, api.Message(err, "Disfraz no encontrado"))
		return
	}

	h.renderCostumeForm(w, r, costume, costumeEditAction(id))
}

// UpdateCostume updates a costume through the API.
func (h *AdminHandler) UpdateCostume(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminCostumes) {
		return
	}

	costume, ok := h.costumeFromForm(w, r, costumeEditAction(id))
	if !ok {
		return
	}

	if _, err := h.client.UpdateCostume(r.Context(), h.sessions.Token(r.Context()), id, costume); err != nil {
		flashError(w, r, h.renderer, costumeEditAction(id), api.Message(err, "No se pudo actualizar el disfraz"))
		return
	}

	h.catalog.InvalidateCostumes(r.Context())
	flashSuccess(w, r, h.renderer, RouteAdminCostumes, "Disfraz actualizado")
}

// DeleteCostume removes a costume. The display order self-heals: the next
// reconcile drops the deleted id.
func (h *AdminHandler) DeleteCostume(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.client.DeleteCostume(r.Context(), h.sessions.Token(r.Context()), id); err != nil {
		flashError(w, r, h.renderer, RouteAdminCostumes, api.Message(err, "No se pudo eliminar el disfraz"))
		return
	}

	h.catalog.InvalidateCostumes(r.Context())
	flashSuccess(w, r, h.renderer, RouteAdminCostumes, "Disfraz eliminado")
}

func (h *AdminHandler) renderCostumeForm(w http.ResponseWriter, r *http.Request, costume *model.Costume, action string) {
	h.render(w, r, "admin/costume_form", "Disfraz", map[string]any{
		"Costume":    costume,
		"Categories": model.CostumeCategories(),
		"Sizes":      model.CostumeSizes(),
		"Action":     action,
	})
}

// costumeFromForm builds a costume from the submitted form, redirecting
// with a flash message when required fields are missing.
func (h *AdminHandler) costumeFromForm(w http.ResponseWriter, r *http.Request, backURL string) (model.Costume, bool) {
	costume := model.Costume{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Category:    r.PostFormValue("category"),
		Size:        r.PostFormValue("size"),
		PricePerDay: model.ParseCLP(r.PostFormValue("price_per_day")),
		ImageURL:    strings.TrimSpace(r.PostFormValue("image_url")),
		Available:   r.PostFormValue("available") == "true",
	}
	costume.StockQuantity, _ = strconv.Atoi(r.PostFormValue("stock_quantity"))

	if costume.Name == "" || costume.Category == "" || costume.Size == "" {
		flashError(w, r, h.renderer, backURL, "Completa el nombre, la categoría y la talla")
		return model.Costume{}, false
	}
	return costume, true
}

func costumeEditAction(id int64) string {
	return RouteAdminCostumes + "/" + strconv.FormatInt(id, 10) + RouteSuffixEdit
}

func costumeIDs(costumes []model.Costume) []int64 {
	ids := make([]int64, len(costumes))
	for i, c := range costumes {
		ids[i] = c.ID
	}
	return ids
}
