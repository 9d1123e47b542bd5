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

// ListPackages renders the package admin list in the persisted display order.
func (h *AdminHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		flashError(w, r, h.renderer, RouteAdmin, api.Message(err, "No se pudieron cargar los paquetes"))
		return
	}

	order := h.ordering.LoadReconciled(r.Context(), ordering.PackageOrderKey, packageIDs(packages))
	ordering.SortByOrder(packages, order, func(p model.AnimationPackage) int64 { return p.ID })

	h.render(w, r, "admin/packages", "Paquetes", map[string]any{"Packages": packages})
}

// MovePackage shifts a package one position up or down in the display order.
func (h *AdminHandler) MovePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	dir, ok := ordering.ParseDirection(r.PostFormValue("direction"))
	if !ok {
		flashError(w, r, h.renderer, RouteAdminPackages, "Dirección inválida")
		return
	}

	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		flashError(w, r, h.renderer, RouteAdminPackages, api.Message(err, "No se pudieron cargar los paquetes"))
		return
	}

	order := h.ordering.LoadReconciled(r.Context(), ordering.PackageOrderKey, packageIDs(packages))
	moved := ordering.Move(order, id, dir)
	if !ordering.Equal(order, moved) {
		if err := h.ordering.Save(r.Context(), ordering.PackageOrderKey, moved); err != nil {
			flashError(w, r, h.renderer, RouteAdminPackages, "No se pudo guardar el orden")
			return
		}
	}

	http.Redirect(w, r, RouteAdminPackages, http.StatusSeeOther)
}

// NewPackageForm renders the empty package form.
func (h *AdminHandler) NewPackageForm(w http.ResponseWriter, r *http.Request) {
	h.renderPackageForm(w, r, &model.AnimationPackage{Available: true, DurationHours: 2}, RouteAdminPackages)
}

// CreatePackage creates a package through the API and invalidates the
// cached listing.
func (h *AdminHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminPackages) {
		return
	}

	pkg, ok := h.packageFromForm(w, r, RouteAdminPackages+RouteSuffixNew)
	if !ok {
		return
	}

	if _, err := h.client.CreatePackage(r.Context(), h.sessions.Token(r.Context()), pkg); err != nil {
		flashError(w, r, h.renderer, RouteAdminPackages+RouteSuffixNew, api.Message(err, "No se pudo crear el paquete"))
		return
	}

	h.catalog.InvalidatePackages(r.Context())
	flashSuccess(w, r, h.renderer, RouteAdminPackages, "Paquete creado")
}

// EditPackageForm renders the package form prefilled from the API.
func (h *AdminHandler) EditPackageForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	pkg, err := h.catalog.Package(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, RouteAdminPackages, api.Message(err, "Paquete no encontrado"))
		return
	}

	h.renderPackageForm(w, r, pkg, packageEditAction(id))
}

// UpdatePackage updates a package through the API.
func (h *AdminHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, RouteAdminPackages) {
		return
	}

	pkg, ok := h.packageFromForm(w, r, packageEditAction(id))
	if !ok {
		return
	}

	if _, err := h.client.UpdatePackage(r.Context(), h.sessions.Token(r.Context()), id, pkg); err != nil {
		flashError(w, r, h.renderer, packageEditAction(id), api.Message(err, "No se pudo actualizar el paquete"))
		return
	}

	h.catalog.InvalidatePackages(r.Context())
	flashSuccess(w, r, h.renderer, RouteAdminPackages, "Paquete actualizado")
}

// DeletePackage removes a package.
func (h *AdminHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.client.DeletePackage(r.Context(), h.sessions.Token(r.Context()), id); err != nil {
		flashError(w, r, h.renderer, RouteAdminPackages, api.Message(err, "No se pudo eliminar el paquete"))
		return
	}

	h.catalog.InvalidatePackages(r.Context())
	flashSuccess(w, r, h.renderer, RouteAdminPackages, "Paquete eliminado")
}

func (h *AdminHandler) renderPackageForm(w http.ResponseWriter, r *http.Request, pkg *model.AnimationPackage, action string) {
	h.render(w, r, "admin/package_form", "Paquete", map[string]any{
		"Package": pkg,
		"Action":  action,
	})
}

func (h *AdminHandler) packageFromForm(w http.ResponseWriter, r *http.Request, backURL string) (model.AnimationPackage, bool) {
	pkg := model.AnimationPackage{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		Price:       model.ParseCLP(r.PostFormValue("price")),
		Includes:    strings.TrimSpace(r.PostFormValue("includes")),
		ImageURL:    strings.TrimSpace(r.PostFormValue("image_url")),
		Available:   r.PostFormValue("available") == "true",
	}
	pkg.DurationHours, _ = strconv.Atoi(r.PostFormValue("duration_hours"))
	pkg.MaxChildren, _ = strconv.Atoi(r.PostFormValue("max_children"))

	if pkg.Name == "" || pkg.DurationHours <= 0 {
		flashError(w, r, h.renderer, backURL, "Completa el nombre y la duración")
		return model.AnimationPackage{}, false
	}
	return pkg, true
}

func packageEditAction(id int64) string {
	return RouteAdminPackages + "/" + strconv.FormatInt(id, 10) + RouteSuffixEdit
}

func packageIDs(packages []model.AnimationPackage) []int64 {
	ids := make([]int64, len(packages))
	for i, p := range packages {
		ids[i] = p.ID
	}
	return ids
}
