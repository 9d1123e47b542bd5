// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/ordering"
)

func publicRouter(env *testEnv) http.Handler {
	h := NewPublicHandler(env.catalog, env.client, env.renderer, env.sessions, env.ordering)
	return env.router(func(r chi.Router) {
		r.Get("/", h.Home)
		r.Get("/costumes", h.Costumes)
		r.Post("/contact", h.Contact)
	})
}

func TestHomeRendersFeaturedCatalog(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/costumes", serveJSON(catalogCostumes()))
	env.mux.HandleFunc("/packages", serveJSON([]model.AnimationPackage{
		{ID: 1, Name: "Fiesta Mágica", Price: 80000, DurationHours: 3, Available: true},
	}))
	r := publicRouter(env)

	rec := getPage(t, r, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Spiderman") || !strings.Contains(body, "Fiesta Mágica") {
		t.Errorf("home page is missing featured catalog items")
	}
}

func TestHomeDegradesWhenCatalogUnavailable(t *testing.T) {
	env := newTestEnv(t)
	// No catalog routes registered: every fetch fails.
	r := publicRouter(env)

	rec := getPage(t, r, "/")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 even with the catalog down", rec.Code)
	}
}

func TestCostumeListingForwardsFilter(t *testing.T) {
	env := newTestEnv(t)
	var gotQuery url.Values
	env.mux.HandleFunc("/costumes", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		serveJSON(catalogCostumes())(w, r)
	})
	r := publicRouter(env)

	rec := getPage(t, r, "/costumes?category="+url.QueryEscape(model.CategoryPrincesses)+"&available=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotQuery.Get("category") != model.CategoryPrincesses {
		t.Errorf("category = %q, want %q", gotQuery.Get("category"), model.CategoryPrincesses)
	}
	if gotQuery.Get("available") != "true" {
		t.Errorf("available = %q, want true", gotQuery.Get("available"))
	}
}

func TestContactSubmission(t *testing.T) {
	env := newTestEnv(t)
	var created model.Contact
	env.mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&created); err != nil {
			t.Errorf("decoding contact payload: %v", err)
		}
		serveJSON(map[string]string{"msg": "Mensaje recibido"})(w, r)
	})
	r := publicRouter(env)

	rec := postForm(t, r, "/contact", url.Values{
		"name":    {"Carla"},
		"email":   {"carla@example.com"},
		"message": {"Hola, quiero cotizar una fiesta."},
	})
	wantRedirect(t, rec, "/contact")

	if created.Name != "Carla" || created.Email != "carla@example.com" {
		t.Errorf("contact = %+v, want name Carla and email carla@example.com", created)
	}
}

func TestPublicCostumesFollowPersistedOrder(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/costumes", serveJSON(catalogCostumes()))
	r := publicRouter(env)

	if err := env.ordering.Save(context.Background(), ordering.CostumeOrderKey, []int64{3, 2, 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec := getPage(t, r, "/costumes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	batman := strings.Index(body, "Batman")
	elsa := strings.Index(body, "Elsa")
	spiderman := strings.Index(body, "Spiderman")
	if !(batman < elsa && elsa < spiderman) {
		t.Errorf("listing order: batman=%d elsa=%d spiderman=%d, want Batman, Elsa, Spiderman", batman, elsa, spiderman)
	}
}

func TestCostumeSearchFiltersByName(t *testing.T) {
	env := newTestEnv(t)
	env.mux.HandleFunc("/costumes", serveJSON(catalogCostumes()))
	r := publicRouter(env)

	rec := getPage(t, r, "/costumes?q=spider")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Spiderman") {
		t.Errorf("search result is missing Spiderman")
	}
	if strings.Contains(body, "Elsa") {
		t.Errorf("search result should not include Elsa")
	}
}

func TestHomeCatalogOutagePreservesDisplayOrder(t *testing.T) {
	env := newTestEnv(t)
	// No catalog routes registered: the fetch fails like an upstream outage.
	r := publicRouter(env)

	ctx := context.Background()
	saved := []int64{3, 2, 1}
	if err := env.ordering.Save(ctx, ordering.CostumeOrderKey, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rec := getPage(t, r, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	got := env.ordering.Load(ctx, ordering.CostumeOrderKey)
	if !ordering.Equal(got, saved) {
		t.Errorf("order after outage = %v, want %v preserved", got, saved)
	}
}
