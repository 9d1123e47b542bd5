// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/service"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// BookingHandler handles the authenticated booking pages.
type BookingHandler struct {
	catalog  *service.CatalogService
	client   *api.Client
	renderer *render.Renderer
	sessions *session.Store
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(catalog *service.CatalogService, client *api.Client, renderer *render.Renderer, sessions *session.Store) *BookingHandler {
	return &BookingHandler{catalog: catalog, client: client, renderer: renderer, sessions: sessions}
}

// List renders the current user's bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.client.ListBookings(r.Context(), h.sessions.Token(r.Context()))
	if err != nil {
		flashError(w, r, h.renderer, RouteRoot, api.Message(err, "No se pudieron cargar tus reservas"))
		return
	}

	h.render(w, r, "pages/bookings", "Mis reservas", map[string]any{"Bookings": bookings})
}

// NewForm renders the booking form. The costume and package query
// parameters preselect catalog items, so "Reservar" links on detail pages
// land on a prefilled form.
func (h *BookingHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	costumes, err := h.catalog.Costumes(r.Context(), api.CostumeFilter{})
	if err != nil {
		costumes = nil
	}
	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		packages = nil
	}

	selectedCostume, _ := strconv.ParseInt(r.URL.Query().Get("costume"), 10, 64)
	selectedPackage, _ := strconv.ParseInt(r.URL.Query().Get("package"), 10, 64)

	var total float64
	if c := findCostume(costumes, selectedCostume); c != nil {
		total += c.PricePerDay
	}
	if p := findPackage(packages, selectedPackage); p != nil {
		total += p.Price
	}

	h.render(w, r, "pages/booking_new", "Nueva reserva", map[string]any{
		"Heading":           "Nueva reserva",
		"Action":            RouteBookings,
		"Submit":            "Crear reserva",
		"Costumes":          costumes,
		"Packages":          packages,
		"SelectedCostumeID": selectedCostume,
		"SelectedPackageID": selectedPackage,
		"Total":             total,
		"EventDate":         "",
		"EventTime":         "",
		"EventLocation":     "",
		"EventAddress":      "",
		"NumChildren":       1,
		"SpecialRequests":   "",
	})
}

// EditForm renders the booking form prefilled with one of the user's
// pending bookings.
func (h *BookingHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	booking, err := h.findBooking(r, id)
	if err != nil {
		flashError(w, r, h.renderer, RouteBookings, api.Message(err, "Reserva no encontrada"))
		return
	}
	if booking.Status != model.BookingStatusPending {
		flashError(w, r, h.renderer, RouteBookings, "Solo puedes editar reservas pendientes")
		return
	}

	costumes, err := h.catalog.Costumes(r.Context(), api.CostumeFilter{})
	if err != nil {
		costumes = nil
	}
	packages, err := h.catalog.Packages(r.Context())
	if err != nil {
		packages = nil
	}

	h.render(w, r, "pages/booking_new", "Editar reserva", map[string]any{
		"Heading":           "Editar reserva",
		"Action":            bookingEditAction(id),
		"Submit":            "Guardar cambios",
		"Costumes":          costumes,
		"Packages":          packages,
		"SelectedCostumeID": booking.CostumeID,
		"SelectedPackageID": booking.PackageID,
		"Total":             booking.TotalPrice,
		"EventDate":         booking.EventDate,
		"EventTime":         booking.EventTime,
		"EventLocation":     booking.EventLocation,
		"EventAddress":      booking.EventAddress,
		"NumChildren":       booking.NumChildren,
		"SpecialRequests":   booking.SpecialRequests,
	})
}

// Create submits a new booking. The booking type and total derive from the
// selected items; the total is recomputed server-side from catalog prices.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.bookingFromForm(w, r, RouteBookings+RouteSuffixNew)
	if !ok {
		return
	}

	if _, err := h.client.CreateBooking(r.Context(), h.sessions.Token(r.Context()), booking); err != nil {
		flashError(w, r, h.renderer, RouteBookings+RouteSuffixNew, api.Message(err, "No se pudo crear la reserva"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteBookings, "Reserva creada. Te confirmaremos pronto.")
}

// Update rewrites a pending booking, recomputing type and total the same
// way Create does.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	booking, ok := h.bookingFromForm(w, r, bookingEditAction(id))
	if !ok {
		return
	}

	if _, err := h.client.UpdateBooking(r.Context(), h.sessions.Token(r.Context()), id, booking); err != nil {
		flashError(w, r, h.renderer, bookingEditAction(id), api.Message(err, "No se pudo actualizar la reserva"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteBookings, "Reserva actualizada")
}

// Cancel marks one of the user's pending bookings as cancelled.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	booking := model.Booking{Status: model.BookingStatusCancelled}
	if _, err := h.client.UpdateBooking(r.Context(), h.sessions.Token(r.Context()), id, booking); err != nil {
		flashError(w, r, h.renderer, RouteBookings, api.Message(err, "No se pudo cancelar la reserva"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteBookings, "Reserva cancelada")
}

// Delete removes one of the user's cancelled bookings.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.client.DeleteBooking(r.Context(), h.sessions.Token(r.Context()), id); err != nil {
		flashError(w, r, h.renderer, RouteBookings, api.Message(err, "No se pudo eliminar la reserva"))
		return
	}

	flashSuccess(w, r, h.renderer, RouteBookings, "Reserva eliminada")
}

// bookingFromForm builds a booking from the submitted form. The selected
// catalog items are fetched so the type and total never come from the form.
func (h *BookingHandler) bookingFromForm(w http.ResponseWriter, r *http.Request, backURL string) (model.Booking, bool) {
	if !parseFormOrRedirect(w, r, h.renderer, backURL) {
		return model.Booking{}, false
	}

	costumeID, _ := strconv.ParseInt(r.PostFormValue("costume_id"), 10, 64)
	packageID, _ := strconv.ParseInt(r.PostFormValue("package_id"), 10, 64)
	eventDate := strings.TrimSpace(r.PostFormValue("event_date"))

	if costumeID == 0 && packageID == 0 {
		flashError(w, r, h.renderer, backURL, "Selecciona un disfraz o un paquete")
		return model.Booking{}, false
	}
	if eventDate == "" {
		flashError(w, r, h.renderer, backURL, "Indica la fecha del evento")
		return model.Booking{}, false
	}

	var (
		costume *model.Costume
		pkg     *model.AnimationPackage
		err     error
	)
	if costumeID > 0 {
		if costume, err = h.catalog.Costume(r.Context(), costumeID); err != nil {
			flashError(w, r, h.renderer, backURL, api.Message(err, "Disfraz no encontrado"))
			return model.Booking{}, false
		}
	}
	if packageID > 0 {
		if pkg, err = h.catalog.Package(r.Context(), packageID); err != nil {
			flashError(w, r, h.renderer, backURL, api.Message(err, "Paquete no encontrado"))
			return model.Booking{}, false
		}
	}

	bookingType := bookingTypeFor(costume != nil, pkg != nil)
	numChildren, _ := strconv.Atoi(r.PostFormValue("num_children"))

	return model.Booking{
		BookingType:     bookingType,
		CostumeID:       costumeID,
		PackageID:       packageID,
		EventDate:       eventDate,
		EventTime:       strings.TrimSpace(r.PostFormValue("event_time")),
		EventLocation:   strings.TrimSpace(r.PostFormValue("event_location")),
		EventAddress:    strings.TrimSpace(r.PostFormValue("event_address")),
		NumChildren:     numChildren,
		SpecialRequests: strings.TrimSpace(r.PostFormValue("special_requests")),
		TotalPrice:      model.ComputeTotal(bookingType, costume, pkg),
	}, true
}

// findBooking locates one of the current user's bookings by id.
func (h *BookingHandler) findBooking(r *http.Request, id int64) (*model.Booking, error) {
	bookings, err := h.client.ListBookings(r.Context(), h.sessions.Token(r.Context()))
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return &bookings[i], nil
		}
	}
	return nil, &api.Error{Status: http.StatusNotFound, Msg: "Reserva no encontrada"}
}

func bookingEditAction(id int64) string {
	return RouteBookings + "/" + strconv.FormatInt(id, 10) + RouteSuffixEdit
}

func (h *BookingHandler) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	renderPage(w, r, h.renderer, h.sessions.Manager(), page, title, data)
}

func bookingTypeFor(hasCostume, hasPackage bool) string {
	switch {
	case hasCostume && hasPackage:
		return model.BookingTypeBoth
	case hasPackage:
		return model.BookingTypePackage
	default:
		return model.BookingTypeCostume
	}
}

func findCostume(costumes []model.Costume, id int64) *model.Costume {
	for i := range costumes {
		if costumes[i].ID == id {
			return &costumes[i]
		}
	}
	return nil
}

func findPackage(packages []model.AnimationPackage, id int64) *model.AnimationPackage {
	for i := range packages {
		if packages[i].ID == id {
			return &packages[i]
		}
	}
	return nil
}
