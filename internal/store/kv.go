// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
)

// KVStore exposes the kv table behind the narrow Get/Set interface used by
// the order overlay store.
type KVStore struct {
	queries *Queries
}

// NewKV creates a KVStore for the given database.
func NewKV(db *sql.DB) *KVStore {
	return &KVStore{queries: New(db)}
}

// Get reads the raw value for key. Returns ErrNotFound for absent keys.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	return s.queries.GetValue(ctx, key)
}

// Set writes the raw value for key, overwriting any prior value.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return s.queries.SetValue(ctx, key, value)
}
