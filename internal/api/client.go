// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api is the typed HTTP client for the external DiverKids REST API.
// All catalog, booking, contact and authentication data lives behind this
// API; the client only shapes requests and surfaces the server's error
// messages, it holds no state beyond the base URL.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client configuration constants.
const (
	RequestTimeout = 30 * time.Second // HTTP request timeout
	UserAgent      = "diverkids-web/1.0"
)

// Error is a failed API call. Msg carries the server's "msg" payload field
// when present; transport failures never produce an Error.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

// Message extracts the server-provided message from err, or returns the
// fallback. Used to build user-facing failure text: transport errors and
// message-less responses both collapse into the fallback.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Msg != "" {
		return apiErr.Msg
	}
	return fallback
}

// Client talks to the DiverKids API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: RequestTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// errorPayload is the API's error body shape.
type errorPayload struct {
	Msg string `json:"msg"`
}

// do performs one API request. A non-empty token is sent as a bearer
// credential. body (if non-nil) is JSON-encoded; out (if non-nil) receives
// the decoded response body.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var payload errorPayload
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &Error{Status: resp.StatusCode, Msg: payload.Msg}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}
