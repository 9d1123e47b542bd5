// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/alexedwards/scs/v2"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// Session keys for the persisted credential pair.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Fallback messages when the API provides none.
const (
	loginFallback  = "Error al iniciar sesión"
	signupFallback = "Error al registrarse"
)

// Result reports the outcome of a login or signup attempt. Rejected
// credentials and transport failures share the same shape: callers only see
// success or a human-readable message.
type Result struct {
	Success bool
	Message string
}

// Store owns the authenticated session state. The token and user record are
// always written and cleared together: a session never holds one without
// the other.
type Store struct {
	manager *scs.SessionManager
	client  *api.Client
}

// NewStore creates a session store using the given manager and API client.
func NewStore(manager *scs.SessionManager, client *api.Client) *Store {
	return &Store{manager: manager, client: client}
}

// Manager returns the underlying session manager, for middleware wiring.
func (s *Store) Manager() *scs.SessionManager {
	return s.manager
}

// Login authenticates against the API and, on success, persists the token
// and user record in the session. On failure the session is left
// unauthenticated and the result carries the server's message when present.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		slog.Debug("login failed", "email", email, "error", err)
		return Result{Message: api.Message(err, loginFallback)}
	}

	raw, err := json.Marshal(resp.User)
	if err != nil {
		slog.Error("marshaling session user", "error", err)
		return Result{Message: loginFallback}
	}

	// Renew the session token on privilege change to prevent fixation.
	if err := s.manager.RenewToken(ctx); err != nil {
		slog.Error("renewing session token", "error", err)
		return Result{Message: loginFallback}
	}
	s.manager.Put(ctx, KeyToken, resp.Token)
	s.manager.Put(ctx, KeyUser, string(raw))

	return Result{Success: true}
}

// Signup registers a new account. The session is never mutated: the user
// logs in separately after registering.
func (s *Store) Signup(ctx context.Context, name, email, password, role string) Result {
	msg, err := s.client.Signup(ctx, name, email, password, role)
	if err != nil {
		slog.Debug("signup failed", "email", email, "error", err)
		return Result{Message: api.Message(err, signupFallback)}
	}
	return Result{Success: true, Message: msg}
}

// Logout clears the persisted credential pair. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	s.manager.Remove(ctx, KeyToken)
	s.manager.Remove(ctx, KeyUser)
	if err := s.manager.RenewToken(ctx); err != nil {
		slog.Error("renewing session token on logout", "error", err)
	}
}

// Current returns the authenticated user, or nil. Malformed or half-present
// session data is treated as an unauthenticated session, never an error.
func (s *Store) Current(ctx context.Context) *model.User {
	user, _ := s.read(ctx)
	return user
}

// Token returns the bearer token for API calls, or "" when unauthenticated.
func (s *Store) Token(ctx context.Context) string {
	_, token := s.read(ctx)
	return token
}

// IsAdmin returns true if the current user has the admin role.
func (s *Store) IsAdmin(ctx context.Context) bool {
	user := s.Current(ctx)
	return user != nil && user.IsAdmin()
}

// read returns the credential pair, enforcing the both-or-none invariant:
// a token without a parsable user record (or the reverse) yields neither.
func (s *Store) read(ctx context.Context) (*model.User, string) {
	token := s.manager.GetString(ctx, KeyToken)
	raw := s.manager.GetString(ctx, KeyUser)
	if token == "" || raw == "" {
		return nil, ""
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		slog.Debug("discarding corrupt session user record", "error", err)
		return nil, ""
	}
	return &user, token
}
