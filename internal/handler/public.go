// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/ordering"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/service"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// featuredLimit caps how many catalog items the homepage shows per section.
const featuredLimit = 4

// PublicHandler serves the public catalog and contact pages.
type PublicHandler struct {
	catalog  *service.CatalogService
	client   *api.Client
	renderer *render.Renderer
	sessions *session.Store
	ordering *ordering.Store
}

// NewPublicHandler creates a new PublicHandler. The public catalog pages
// follow the same persisted display order as the admin screens.
func NewPublicHandler(catalog *service.CatalogService, client *api.Client, renderer *render.Renderer, sessions *session.Store, ord *ordering.Store) *PublicHandler {
	return &PublicHandler{catalog: catalog, client: client, renderer: renderer, sessions: sessions, ordering: ord}
}

// Home renders the homepage with featured costumes and packages. Catalog
// errors degrade to empty sections rather than failing the page.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	costumes, err := h.catalog.Costumes(r.Context(), api.CostumeFilter{})
	if err != nil {
		costumes = nil
	}
	h.sortCostumes(r, costumes)
	if len(costumes) > featuredLimit {
		costumes = costumes[:featuredLimit]
	}

	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		packages = nil
	}
	h.sortPackages(r, packages)
	if len(packages) > featuredLimit {
		packages = packages[:featuredLimit]
	}

	h.render(w, r, "pages/home", "Inicio", map[string]any{
		"Costumes": costumes,
		"Packages": packages,
	})
}

// Costumes renders the costume catalog with optional category and
// availability filters.
func (h *PublicHandler) Costumes(w http.ResponseWriter, r *http.Request) {
	filter := api.CostumeFilter{
		Category: r.URL.Query().Get("category"),
	}
	onlyAvailable := r.URL.Query().Get("available") == "true"
	if onlyAvailable {
		avail := true
		filter.Available = &avail
	}

	costumes, err := h.catalog.Costumes(r.Context(), filter)
	if err != nil {
		flashError(w, r, h.renderer, RouteRoot, api.Message(err, "No se pudieron cargar los disfraces"))
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query != "" {
		costumes = searchCostumes(costumes, query)
	}
	h.sortCostumes(r, costumes)

	h.render(w, r, "pages/costumes", "Disfraces", map[string]any{
		"Costumes":         costumes,
		"Categories":       model.CostumeCategories(),
		"SelectedCategory": filter.Category,
		"OnlyAvailable":    onlyAvailable,
		"Query":            query,
	})
}

// CostumeDetail renders a single costume page.
func (h *PublicHandler) CostumeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	costume, err := h.catalog.Costume(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, RouteCostumes, api.Message(err, "Disfraz no encontrado"))
		return
	}

	h.render(w, r, "pages/costume_detail", costume.Name, map[string]any{"Costume": costume})
}

// Packages renders the animation package catalog.
func (h *PublicHandler) Packages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		flashError(w, r, h.renderer, RouteRoot, api.Message(err, "No se pudieron cargar los paquetes"))
		return
	}
	h.sortPackages(r, packages)

	h.render(w, r, "pages/packages", "Paquetes de animación", map[string]any{"Packages": packages})
}

// PackageDetail renders a single package page.
func (h *PublicHandler) PackageDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	pkg, err := h.catalog.Package(r.Context(), id)
	if err != nil {
		flashError(w, r, h.renderer, RoutePackages, api.Message(err, "Paquete no encontrado"))
		return
	}

	h.render(w, r, "pages/package_detail", pkg.Name, map[string]any{"Package": pkg})
}

// About renders the about page.
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/about", "Nosotros", nil)
}

// ContactForm renders the contact page.
func (h *PublicHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{"Name": "", "Email": "", "Phone": "", "Message": ""}
	if user := h.sessions.Current(r.Context()); user != nil {
		data["Name"] = user.Name
		data["Email"] = user.Email
		data["Phone"] = user.Phone
	}
	h.render(w, r, "pages/contact", "Contacto", data)
}

// Contact submits a contact message to the API.
func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteContact) {
		return
	}

	contact := model.Contact{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
	if contact.Name == "" || contact.Email == "" || contact.Message == "" {
		flashError(w, r, h.renderer, RouteContact, "Completa tu nombre, email y mensaje")
		return
	}

	msg, err := h.client.CreateContact(r.Context(), contact)
	if err != nil {
		flashError(w, r, h.renderer, RouteContact, api.Message(err, "No se pudo enviar el mensaje"))
		return
	}

	if msg == "" {
		msg = "Mensaje enviado. Te contactaremos pronto."
	}
	flashSuccess(w, r, h.renderer, RouteContact, msg)
}

func (h *PublicHandler) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	renderPage(w, r, h.renderer, h.sessions.Manager(), page, title, data)
}

func (h *PublicHandler) sortCostumes(r *http.Request, costumes []model.Costume) {
	order := h.ordering.LoadReconciled(r.Context(), ordering.CostumeOrderKey, costumeIDs(costumes))
	ordering.SortByOrder(costumes, order, func(c model.Costume) int64 { return c.ID })
}

func (h *PublicHandler) sortPackages(r *http.Request, packages []model.AnimationPackage) {
	order := h.ordering.LoadReconciled(r.Context(), ordering.PackageOrderKey, packageIDs(packages))
	ordering.SortByOrder(packages, order, func(p model.AnimationPackage) int64 { return p.ID })
}

// searchCostumes filters by a case-insensitive match on name or description.
func searchCostumes(costumes []model.Costume, query string) []model.Costume {
	query = strings.ToLower(query)
	var out []model.Costume
	for _, c := range costumes {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Description), query) {
			out = append(out, c)
		}
	}
	return out
}
