// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization and request hardening.
package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the request-context key holding the session user.
const ContextKeyUser ContextKey = "user"

// Access is the privilege level a route requires.
type Access int

const (
	// AccessAuthenticated requires any logged-in user.
	AccessAuthenticated Access = iota
	// AccessAdmin requires a logged-in user with the admin role.
	AccessAdmin
)

// RequireAccess gates a route subtree on session state. Unauthenticated
// requests are redirected to the login page; authenticated non-admins
// hitting an admin route are redirected home. The session is consulted on
// every request, so login and logout take effect immediately.
func RequireAccess(sessions *session.Store, level Access) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := sessions.Current(r.Context())
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if level == AccessAdmin && !user.IsAdmin() {
				slog.Warn("access denied",
					"status", http.StatusForbidden,
					"method", r.Method,
					"path", r.URL.Path,
					"user_id", user.ID,
					"user_role", user.Role,
				)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadUser puts the session user (if any) into the request context so
// templates and handlers can read it without hitting the session again.
func LoadUser(sessions *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := sessions.Current(r.Context()); user != nil {
				ctx := context.WithValue(r.Context(), ContextKeyUser, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUser retrieves the current user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *model.User {
	user, ok := r.Context().Value(ContextKeyUser).(*model.User)
	if !ok {
		return nil
	}
	return user
}
