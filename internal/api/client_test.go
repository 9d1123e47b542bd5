// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if body["email"] != "a@b.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "t1",
			"user":  map[string]any{"id": 1, "name": "Ana", "email": "a@b.com", "role": "admin"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "t1" {
		t.Errorf("token = %q, want t1", resp.Token)
	}
	if resp.User.Role != model.RoleAdmin {
		t.Errorf("role = %q, want admin", resp.User.Role)
	}
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Correo o contraseña incorrectos"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", apiErr.Status)
	}
	if apiErr.Msg != "Correo o contraseña incorrectos" {
		t.Errorf("msg = %q", apiErr.Msg)
	}
}

func TestMessagePrefersServerMsg(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{"server msg", &Error{Status: 401, Msg: "Correo o contraseña incorrectos"}, "Error al iniciar sesión", "Correo o contraseña incorrectos"},
		{"empty server msg", &Error{Status: 500}, "Error al iniciar sesión", "Error al iniciar sesión"},
		{"transport error", errors.New("connection refused"), "Error al iniciar sesión", "Error al iniciar sesión"},
		{"nil error", nil, "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, tt.fallback); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBearerTokenSentOnProtectedCalls(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]model.Contact{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.ListContacts(context.Background(), "tok-123"); err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestNoAuthHeaderOnPublicCalls(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]model.Costume{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.ListCostumes(context.Background(), CostumeFilter{}); err != nil {
		t.Fatalf("ListCostumes: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestCostumeFilterQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]model.Costume{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	available := true
	_, err := client.ListCostumes(context.Background(), CostumeFilter{
		Category:  "Princesas",
		Available: &available,
	})
	if err != nil {
		t.Fatalf("ListCostumes: %v", err)
	}
	if gotQuery != "available=true&category=Princesas" {
		t.Errorf("query = %q", gotQuery)
	}
}

func TestCrudPaths(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"update costume", func() error {
			_, err := client.UpdateCostume(ctx, "t", 3, model.Costume{Name: "Spiderman"})
			return err
		}, http.MethodPut, "/costumes/3"},
		{"delete package", func() error {
			return client.DeletePackage(ctx, "t", 3)
		}, http.MethodDelete, "/packages/3"},
		{"create booking", func() error {
			_, err := client.CreateBooking(ctx, "t", model.Booking{BookingType: model.BookingTypeBoth})
			return err
		}, http.MethodPost, "/bookings"},
		{"update event", func() error {
			_, err := client.UpdateEvent(ctx, "t", 3, model.Event{Title: "Cumpleaños"})
			return err
		}, http.MethodPut, "/events/3"},
		{"delete contact", func() error {
			return client.DeleteContact(ctx, "t", 3)
		}, http.MethodDelete, "/contact/3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err != nil {
				t.Fatalf("call: %v", err)
			}
			if gotMethod != tt.method || gotPath != tt.path {
				t.Errorf("request = %s %s, want %s %s", gotMethod, gotPath, tt.method, tt.path)
			}
		})
	}
}

func TestForgotPasswordDevResetURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"msg":           "Correo enviado",
			"dev_reset_url": "http://localhost:5173/reset-password?token=abc",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	resp, err := client.ForgotPassword(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if resp.DevResetURL == "" {
		t.Error("expected dev_reset_url to be populated")
	}
}
