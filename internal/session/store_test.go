// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// testStore builds a Store over an in-memory session manager and a stub API.
func testStore(t *testing.T, apiHandler http.HandlerFunc) (*Store, context.Context) {
	t.Helper()

	srv := httptest.NewServer(apiHandler)
	t.Cleanup(srv.Close)

	sm := scs.New()
	store := NewStore(sm, api.NewClient(srv.URL))

	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}
	return store, ctx
}

func loginOK(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "t1",
			"user":  map[string]any{"id": 1, "name": "Ana", "email": "a@b.com", "role": "admin"},
		})
	}
}

func TestFreshSessionUnauthenticated(t *testing.T) {
	store, ctx := testStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if user := store.Current(ctx); user != nil {
		t.Errorf("Current = %+v, want nil", user)
	}
	if token := store.Token(ctx); token != "" {
		t.Errorf("Token = %q, want empty", token)
	}
	if store.IsAdmin(ctx) {
		t.Error("IsAdmin = true for fresh session")
	}
}

func TestLoginStoresUserAndToken(t *testing.T) {
	store, ctx := testStore(t, loginOK(t))

	result := store.Login(ctx, "a@b.com", "secret")
	if !result.Success {
		t.Fatalf("Login failed: %q", result.Message)
	}

	user := store.Current(ctx)
	if user == nil || user.Role != model.RoleAdmin {
		t.Fatalf("Current = %+v, want admin user", user)
	}
	if store.Token(ctx) != "t1" {
		t.Errorf("Token = %q, want t1", store.Token(ctx))
	}
	if !store.IsAdmin(ctx) {
		t.Error("IsAdmin = false after admin login")
	}
}

func TestLoginRejectedLeavesSessionClean(t *testing.T) {
	store, ctx := testStore(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Correo o contraseña incorrectos"})
	})

	result := store.Login(ctx, "a@b.com", "wrong")
	if result.Success {
		t.Fatal("expected login to fail")
	}
	if result.Message != "Correo o contraseña incorrectos" {
		t.Errorf("Message = %q", result.Message)
	}

	if store.Current(ctx) != nil || store.Token(ctx) != "" {
		t.Error("failed login must leave the session unauthenticated")
	}
}

func TestLoginTransportErrorUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // Simulate the API being unreachable.

	sm := scs.New()
	store := NewStore(sm, api.NewClient(srv.URL))
	ctx, err := sm.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("loading session: %v", err)
	}

	result := store.Login(ctx, "a@b.com", "secret")
	if result.Success {
		t.Fatal("expected login to fail")
	}
	if result.Message != "Error al iniciar sesión" {
		t.Errorf("Message = %q, want generic fallback", result.Message)
	}
}

func TestLogoutClearsBothAtomically(t *testing.T) {
	store, ctx := testStore(t, loginOK(t))

	if result := store.Login(ctx, "a@b.com", "secret"); !result.Success {
		t.Fatalf("Login failed: %q", result.Message)
	}

	store.Logout(ctx)
	if store.Current(ctx) != nil {
		t.Error("Current != nil after logout")
	}
	if store.Token(ctx) != "" {
		t.Error("Token not cleared after logout")
	}

	// Logout is idempotent.
	store.Logout(ctx)
	if store.Current(ctx) != nil {
		t.Error("second Logout changed the outcome")
	}
}

func TestSignupDoesNotMutateSession(t *testing.T) {
	store, ctx := testStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/signup" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Usuario creado"})
	})

	result := store.Signup(ctx, "Ana", "a@b.com", "secret", "")
	if !result.Success {
		t.Fatalf("Signup failed: %q", result.Message)
	}
	if result.Message != "Usuario creado" {
		t.Errorf("Message = %q", result.Message)
	}

	if store.Current(ctx) != nil || store.Token(ctx) != "" {
		t.Error("signup must not authenticate the session")
	}
}

func TestCorruptUserRecordTreatedAsAbsent(t *testing.T) {
	store, ctx := testStore(t, loginOK(t))

	sm := store.Manager()
	sm.Put(ctx, KeyToken, "t1")
	sm.Put(ctx, KeyUser, "{not json")

	if store.Current(ctx) != nil {
		t.Error("corrupt user record must read as unauthenticated")
	}
	// Both-or-none: a token without a readable user is no credential at all.
	if store.Token(ctx) != "" {
		t.Error("token must not be visible without a readable user record")
	}
}

func TestTokenWithoutUserIsAbsent(t *testing.T) {
	store, ctx := testStore(t, loginOK(t))

	store.Manager().Put(ctx, KeyToken, "orphan")
	if store.Token(ctx) != "" || store.Current(ctx) != nil {
		t.Error("half-present session data must read as unauthenticated")
	}
}
