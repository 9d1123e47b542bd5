// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"net/http"

	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// LoginResponse is the API's successful login payload.
type LoginResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login authenticates with email and password.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// msgResponse is the API's generic acknowledgment payload.
type msgResponse struct {
	Msg string `json:"msg"`
}

// Signup registers a new account. Registration does not authenticate; the
// user logs in separately afterwards. Returns the server's acknowledgment
// message.
func (c *Client) Signup(ctx context.Context, name, email, password, role string) (string, error) {
	if role == "" {
		role = model.RoleParent
	}
	body := map[string]string{"name": name, "email": email, "password": password, "role": role}
	var resp msgResponse
	if err := c.do(ctx, http.MethodPost, "/signup", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Msg, nil
}

// ForgotPasswordResponse acknowledges a password-reset request.
// DevResetURL is only populated by the API in development mode.
type ForgotPasswordResponse struct {
	Msg         string `json:"msg"`
	DevResetURL string `json:"dev_reset_url,omitempty"`
}

// ForgotPassword requests a password-reset email for the account.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	var resp ForgotPasswordResponse
	if err := c.do(ctx, http.MethodPost, "/forgot-password", "", map[string]string{"email": email}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword sets a new password using a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) (string, error) {
	body := map[string]string{"token": token, "password": password}
	var resp msgResponse
	if err := c.do(ctx, http.MethodPost, "/reset-password", "", body, &resp); err != nil {
		return "", err
	}
	return resp.Msg, nil
}
