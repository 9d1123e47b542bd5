// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler contains the HTTP handlers for the DiverKids web frontend.
package handler

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/middleware"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
)

// AuthHandler handles authentication routes.
type AuthHandler struct {
	sessions        *session.Store
	client          *api.Client
	renderer        *render.Renderer
	loginProtection *middleware.LoginProtection
	isDev           bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *session.Store, client *api.Client, renderer *render.Renderer, lp *middleware.LoginProtection, isDev bool) *AuthHandler {
	return &AuthHandler{
		sessions:        sessions,
		client:          client,
		renderer:        renderer,
		loginProtection: lp,
		isDev:           isDev,
	}
}

// LoginForm renders the login page. Already-authenticated users are
// redirected away: admins to the dashboard, parents to the homepage.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if user := h.sessions.Current(r.Context()); user != nil {
		http.Redirect(w, r, h.homeFor(user), http.StatusSeeOther)
		return
	}

	h.renderAuth(w, r, "auth/login", "Iniciar sesión", map[string]any{"Email": ""})
}

// Login processes the login form.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteLogin) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.PostFormValue("email")))
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		flashError(w, r, h.renderer, RouteLogin, "Ingresa tu email y contraseña")
		return
	}

	ip := clientIP(r)
	if !h.loginProtection.CheckIPRateLimit(ip) {
		slog.Warn("login rate limit exceeded", "ip", ip)
		flashError(w, r, h.renderer, RouteLogin, "Demasiados intentos. Espera un momento e inténtalo de nuevo.")
		return
	}
	if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
		flashError(w, r, h.renderer, RouteLogin,
			fmt.Sprintf("Cuenta bloqueada temporalmente. Inténtalo de nuevo en %d minutos.", int(remaining.Minutes())+1))
		return
	}

	result := h.sessions.Login(r.Context(), email, password)
	if !result.Success {
		h.loginProtection.RecordFailedAttempt(email)
		flashError(w, r, h.renderer, RouteLogin, result.Message)
		return
	}

	h.loginProtection.RecordSuccessfulLogin(email)
	user := h.sessions.Current(r.Context())
	flashSuccess(w, r, h.renderer, h.homeFor(user), "¡Bienvenido de vuelta!")
}

// RegisterForm renders the registration page.
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if user := h.sessions.Current(r.Context()); user != nil {
		http.Redirect(w, r, h.homeFor(user), http.StatusSeeOther)
		return
	}

	h.renderAuth(w, r, "auth/register", "Crear cuenta", map[string]any{"Name": "", "Email": "", "Phone": ""})
}

// Register processes the registration form. New accounts always get the
// parent role; the session is not touched, the user logs in afterwards.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteRegister) {
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(strings.ToLower(r.PostFormValue("email")))
	password := r.PostFormValue("password")

	if name == "" || email == "" || len(password) < 6 {
		flashError(w, r, h.renderer, RouteRegister, "Completa todos los campos. La contraseña debe tener al menos 6 caracteres.")
		return
	}

	result := h.sessions.Signup(r.Context(), name, email, password, model.RoleParent)
	if !result.Success {
		flashError(w, r, h.renderer, RouteRegister, result.Message)
		return
	}

	msg := result.Message
	if msg == "" {
		msg = "Cuenta creada. Ahora puedes iniciar sesión."
	}
	flashSuccess(w, r, h.renderer, RouteLogin, msg)
}

// Logout clears the session and redirects to the homepage.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	flashSuccess(w, r, h.renderer, RouteRoot, "Sesión cerrada")
}

// ForgotPasswordForm renders the password recovery page.
func (h *AuthHandler) ForgotPasswordForm(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, "auth/forgot_password", "Recuperar contraseña", map[string]any{"Email": ""})
}

// ForgotPassword requests a password reset from the API. In development the
// API returns the reset URL directly; it is shown on the page.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteForgotPassword) {
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.PostFormValue("email")))
	if email == "" {
		flashError(w, r, h.renderer, RouteForgotPassword, "Ingresa tu email")
		return
	}

	resp, err := h.client.ForgotPassword(r.Context(), email)
	if err != nil {
		flashError(w, r, h.renderer, RouteForgotPassword, api.Message(err, "No se pudo procesar la solicitud"))
		return
	}

	data := map[string]any{"Email": email}
	if h.isDev && resp.DevResetURL != "" {
		data["DevResetURL"] = resp.DevResetURL
	}

	h.renderer.SetFlash(r, resp.Msg, "success")
	h.renderAuth(w, r, "auth/forgot_password", "Recuperar contraseña", data)
}

// ResetPasswordForm renders the password reset page for a given token.
func (h *AuthHandler) ResetPasswordForm(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		flashError(w, r, h.renderer, RouteForgotPassword, "Enlace de restablecimiento inválido")
		return
	}

	h.renderAuth(w, r, "auth/reset_password", "Nueva contraseña", map[string]any{"Token": token})
}

// ResetPassword processes the password reset form.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, RouteForgotPassword) {
		return
	}

	token := r.PostFormValue("token")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("password_confirm")

	if token == "" {
		flashError(w, r, h.renderer, RouteForgotPassword, "Enlace de restablecimiento inválido")
		return
	}
	if len(password) < 6 {
		flashError(w, r, h.renderer, RouteResetPassword+"?token="+token, "La contraseña debe tener al menos 6 caracteres")
		return
	}
	if password != confirm {
		flashError(w, r, h.renderer, RouteResetPassword+"?token="+token, "Las contraseñas no coinciden")
		return
	}

	msg, err := h.client.ResetPassword(r.Context(), token, password)
	if err != nil {
		flashError(w, r, h.renderer, RouteResetPassword+"?token="+token, api.Message(err, "No se pudo restablecer la contraseña"))
		return
	}

	if msg == "" {
		msg = "Contraseña actualizada. Ahora puedes iniciar sesión."
	}
	flashSuccess(w, r, h.renderer, RouteLogin, msg)
}

func (h *AuthHandler) homeFor(user *model.User) string {
	if user != nil && user.IsAdmin() {
		return RouteAdmin
	}
	return RouteRoot
}

func (h *AuthHandler) renderAuth(w http.ResponseWriter, r *http.Request, page, title string, data map[string]any) {
	err := h.renderer.Render(w, r, page, render.TemplateData{
		Title:     title,
		Data:      data,
		User:      middleware.GetUser(r),
		CSRFToken: h.sessions.Manager().Token(r.Context()),
	})
	if err != nil {
		logAndInternalError(w, "rendering auth page", "page", page, "error", err)
	}
}

// clientIP extracts the caller's IP address. RealIP middleware has already
// resolved proxy headers into RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
