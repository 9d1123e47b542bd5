// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package ordering

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Storage keys, one per catalog kind.
const (
	CostumeOrderKey = "admin_costumes_order"
	PackageOrderKey = "admin_packages_order"
)

// KV is the narrow key-value persistence interface the overlay store needs.
// Get returns ErrNotFound (or any error) for absent keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Store persists catalog order overlays as JSON ID lists in a KV backend.
type Store struct {
	kv KV
}

// NewStore creates an overlay store on top of the given KV backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads the persisted order for a catalog key. Absent or corrupt data
// yields an empty sequence, never an error.
func (s *Store) Load(ctx context.Context, key string) []int64 {
	raw, err := s.kv.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var order []int64
	if err := json.Unmarshal(raw, &order); err != nil {
		slog.Debug("discarding corrupt order overlay", "key", key, "error", err)
		return nil
	}
	return order
}

// Save writes the order for a catalog key, overwriting any prior value.
func (s *Store) Save(ctx context.Context, key string, order []int64) error {
	if order == nil {
		order = []int64{}
	}
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key, raw)
}

// LoadReconciled loads the persisted order for key and reconciles it
// against the live ID set. Reads never write the result back: the persisted
// order only changes on an explicit reorder, so a degraded or empty live
// set (a failed catalog fetch) cannot erase a curated order.
func (s *Store) LoadReconciled(ctx context.Context, key string, live []int64) []int64 {
	return Reconcile(live, s.Load(ctx, key))
}
