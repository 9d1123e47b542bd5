// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// guardedRequest runs a request through LoadUser + RequireAccess(level) with
// the given session user pre-planted, and returns the recorder.
func guardedRequest(t *testing.T, user *model.User, level Access) *httptest.ResponseRecorder {
	t.Helper()

	sm := scs.New()
	sessions := session.NewStore(sm, api.NewClient("http://unused.invalid"))

	reached := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("protected content"))
	})
	handler := sm.LoadAndSave(LoadUser(sessions)(RequireAccess(sessions, level)(reached)))

	// Plant the session through a priming request so the guard reads it the
	// same way production does.
	if user != nil {
		raw, err := json.Marshal(user)
		if err != nil {
			t.Fatalf("marshaling user: %v", err)
		}
		prime := sm.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sm.Put(r.Context(), session.KeyToken, "t1")
			sm.Put(r.Context(), session.KeyUser, string(raw))
		}))
		primeRec := httptest.NewRecorder()
		prime.ServeHTTP(primeRec, httptest.NewRequest(http.MethodGet, "/prime", nil))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		for _, c := range primeRec.Result().Cookies() {
			req.AddCookie(c)
		}
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	return rec
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	rec := guardedRequest(t, nil, AccessAuthenticated)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect = %q, want /login", loc)
	}
}

func TestGuardRedirectsAnonymousFromAdminToLogin(t *testing.T) {
	rec := guardedRequest(t, nil, AccessAdmin)

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("status=%d location=%q, want 303 /login", rec.Code, rec.Header().Get("Location"))
	}
}

func TestGuardRedirectsParentFromAdminToHome(t *testing.T) {
	parent := &model.User{ID: 2, Role: model.RoleParent}
	rec := guardedRequest(t, parent, AccessAdmin)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("redirect = %q, want /", loc)
	}
}

func TestGuardAllowsParentOnAuthenticatedRoute(t *testing.T) {
	parent := &model.User{ID: 2, Role: model.RoleParent}
	rec := guardedRequest(t, parent, AccessAuthenticated)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "protected content" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestGuardAllowsAdminOnAdminRoute(t *testing.T) {
	admin := &model.User{ID: 1, Role: model.RoleAdmin}
	rec := guardedRequest(t, admin, AccessAdmin)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestGetUserAbsent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if user := GetUser(req); user != nil {
		t.Errorf("GetUser = %+v, want nil", user)
	}
}

func TestGetUserFromContext(t *testing.T) {
	want := &model.User{ID: 7, Role: model.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, want))

	if got := GetUser(req); got != want {
		t.Errorf("GetUser = %+v, want %+v", got, want)
	}
}
