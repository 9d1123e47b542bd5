// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic services.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/cache"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// Cache keys for the catalog listings. Filtered costume listings bypass
// the cache; only the unfiltered lists are hot enough to be worth it.
const (
	costumesCacheKey = "catalog:costumes"
	packagesCacheKey = "catalog:packages"
)

// CatalogClient is the part of the API client the catalog service needs.
type CatalogClient interface {
	ListCostumes(ctx context.Context, filter api.CostumeFilter) ([]model.Costume, error)
	GetCostume(ctx context.Context, id int64) (*model.Costume, error)
	ListPackages(ctx context.Context) ([]model.AnimationPackage, error)
	GetPackage(ctx context.Context, id int64) (*model.AnimationPackage, error)
}

// CatalogService serves costume and package listings, caching the unfiltered
// lists so public pages do not hit the upstream API on every request.
type CatalogService struct {
	client CatalogClient
	cache  cache.Cache
	ttl    time.Duration
	log    *slog.Logger
}

// NewCatalogService creates a catalog service backed by the given API client
// and cache. A ttl of 0 defers to the cache's default.
func NewCatalogService(client CatalogClient, c cache.Cache, ttl time.Duration, log *slog.Logger) *CatalogService {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogService{client: client, cache: c, ttl: ttl, log: log}
}

// Costumes returns costumes matching the filter. Unfiltered listings are
// served from cache when possible.
func (s *CatalogService) Costumes(ctx context.Context, filter api.CostumeFilter) ([]model.Costume, error) {
	if filter != (api.CostumeFilter{}) {
		return s.client.ListCostumes(ctx, filter)
	}

	var costumes []model.Costume
	if s.fromCache(ctx, costumesCacheKey, &costumes) {
		return costumes, nil
	}

	costumes, err := s.client.ListCostumes(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, costumesCacheKey, costumes)
	return costumes, nil
}

// Costume returns a single costume by id, always from the upstream API so
// detail pages reflect availability changes immediately.
func (s *CatalogService) Costume(ctx context.Context, id int64) (*model.Costume, error) {
	return s.client.GetCostume(ctx, id)
}

// Packages returns all animation packages, served from cache when possible.
func (s *CatalogService) Packages(ctx context.Context) ([]model.AnimationPackage, error) {
	var packages []model.AnimationPackage
	if s.fromCache(ctx, packagesCacheKey, &packages) {
		return packages, nil
	}

	packages, err := s.client.ListPackages(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, packagesCacheKey, packages)
	return packages, nil
}

// Package returns a single animation package by id.
func (s *CatalogService) Package(ctx context.Context, id int64) (*model.AnimationPackage, error) {
	return s.client.GetPackage(ctx, id)
}

// InvalidateCostumes drops the cached costume listing. Call after any admin
// mutation so the next read sees the upstream state.
func (s *CatalogService) InvalidateCostumes(ctx context.Context) {
	if err := s.cache.Delete(ctx, costumesCacheKey); err != nil {
		s.log.Warn("cache invalidation failed", "key", costumesCacheKey, "error", err)
	}
}

// InvalidatePackages drops the cached package listing.
func (s *CatalogService) InvalidatePackages(ctx context.Context) {
	if err := s.cache.Delete(ctx, packagesCacheKey); err != nil {
		s.log.Warn("cache invalidation failed", "key", packagesCacheKey, "error", err)
	}
}

// Refresh re-fetches both listings from the upstream API and rewrites the
// cache. Used by the background refresher so cached entries never serve
// stale data for longer than the refresh interval.
func (s *CatalogService) Refresh(ctx context.Context) error {
	costumes, err := s.client.ListCostumes(ctx, api.CostumeFilter{})
	if err != nil {
		return err
	}
	s.toCache(ctx, costumesCacheKey, costumes)

	packages, err := s.client.ListPackages(ctx)
	if err != nil {
		return err
	}
	s.toCache(ctx, packagesCacheKey, packages)

	return nil
}

func (s *CatalogService) fromCache(ctx context.Context, key string, out any) bool {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.log.Warn("cache entry corrupt", "key", key, "error", err)
		_ = s.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (s *CatalogService) toCache(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
}
