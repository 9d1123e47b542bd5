// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/cache"
	"github.com/jeanAguiluz/diverkids-go/internal/middleware"
	"github.com/jeanAguiluz/diverkids-go/internal/ordering"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/service"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
	"github.com/jeanAguiluz/diverkids-go/internal/store"
	"github.com/jeanAguiluz/diverkids-go/internal/testutil"
	"github.com/jeanAguiluz/diverkids-go/web"
)

// testEnv wires handlers against a fake upstream API server and a real
// temporary database, so tests exercise the same paths production takes.
type testEnv struct {
	mux      *http.ServeMux
	sm       *scs.SessionManager
	sessions *session.Store
	renderer *render.Renderer
	client   *api.Client
	catalog  *service.CatalogService
	ordering *ordering.Store
	queries  *store.Queries
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL)
	sm := scs.New()
	sessions := session.NewStore(sm, client)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("templates fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		IsDev:          true,
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	db := testutil.TestDB(t)
	catalog := service.NewCatalogService(client, cache.NewSimpleMemoryCache(time.Minute),
		time.Minute, testutil.TestLogger())

	return &testEnv{
		mux:      mux,
		sm:       sm,
		sessions: sessions,
		renderer: renderer,
		client:   client,
		catalog:  catalog,
		ordering: ordering.NewStore(store.NewKV(db)),
		queries:  store.New(db),
	}
}

// router builds a chi router with the session and user-loading middleware
// applied, mirroring the production middleware chain.
func (e *testEnv) router(register func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(e.sm.LoadAndSave)
	r.Use(middleware.LoadUser(e.sessions))
	register(r)
	return r
}

func (e *testEnv) adminHandler() *AdminHandler {
	return NewAdminHandler(e.catalog, e.client, e.renderer, e.sessions, e.ordering, e.queries)
}

func (e *testEnv) authHandler() *AuthHandler {
	lp := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())
	return NewAuthHandler(e.sessions, e.client, e.renderer, lp, true)
}

func serveJSON(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

func getPage(t *testing.T, h http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func wantRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != location {
		t.Errorf("redirect = %q, want %q", loc, location)
	}
}
