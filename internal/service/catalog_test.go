// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"testing"
	"time"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/cache"
	"github.com/jeanAguiluz/diverkids-go/internal/model"
)

// fakeCatalogClient counts upstream calls and serves canned data.
type fakeCatalogClient struct {
	costumes     []model.Costume
	packages     []model.AnimationPackage
	costumeCalls int
	packageCalls int
	lastFilter   api.CostumeFilter
	err          error
}

func (f *fakeCatalogClient) ListCostumes(_ context.Context, filter api.CostumeFilter) ([]model.Costume, error) {
	f.costumeCalls++
	f.lastFilter = filter
	return f.costumes, f.err
}

func (f *fakeCatalogClient) GetCostume(_ context.Context, id int64) (*model.Costume, error) {
	for i := range f.costumes {
		if f.costumes[i].ID == id {
			return &f.costumes[i], nil
		}
	}
	return nil, f.err
}

func (f *fakeCatalogClient) ListPackages(_ context.Context) ([]model.AnimationPackage, error) {
	f.packageCalls++
	return f.packages, f.err
}

func (f *fakeCatalogClient) GetPackage(_ context.Context, id int64) (*model.AnimationPackage, error) {
	for i := range f.packages {
		if f.packages[i].ID == id {
			return &f.packages[i], nil
		}
	}
	return nil, f.err
}

func testService(t *testing.T, client *fakeCatalogClient) *CatalogService {
	t.Helper()
	c := cache.NewSimpleMemoryCache(time.Hour)
	t.Cleanup(func() { _ = c.Close() })
	return NewCatalogService(client, c, time.Hour, nil)
}

func TestCatalogService_CostumesCached(t *testing.T) {
	client := &fakeCatalogClient{costumes: []model.Costume{
		{ID: 1, Name: "Spiderman"},
		{ID: 2, Name: "Elsa"},
	}}
	svc := testService(t, client)
	ctx := context.Background()

	first, err := svc.Costumes(ctx, api.CostumeFilter{})
	if err != nil {
		t.Fatalf("Costumes: %v", err)
	}
	second, err := svc.Costumes(ctx, api.CostumeFilter{})
	if err != nil {
		t.Fatalf("Costumes (cached): %v", err)
	}

	if client.costumeCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", client.costumeCalls)
	}
	if len(first) != 2 || len(second) != 2 {
		t.Errorf("expected 2 costumes from both reads, got %d and %d", len(first), len(second))
	}
	if second[0].Name != "Spiderman" {
		t.Errorf("cached costume name = %q", second[0].Name)
	}
}

func TestCatalogService_FilteredBypassesCache(t *testing.T) {
	client := &fakeCatalogClient{}
	svc := testService(t, client)
	ctx := context.Background()

	filter := api.CostumeFilter{Category: model.CategoryPrincesses}
	if _, err := svc.Costumes(ctx, filter); err != nil {
		t.Fatalf("Costumes: %v", err)
	}
	if _, err := svc.Costumes(ctx, filter); err != nil {
		t.Fatalf("Costumes: %v", err)
	}

	if client.costumeCalls != 2 {
		t.Errorf("filtered listing should hit upstream every time, got %d calls", client.costumeCalls)
	}
	if client.lastFilter.Category != model.CategoryPrincesses {
		t.Errorf("filter not forwarded, got %+v", client.lastFilter)
	}
}

func TestCatalogService_InvalidateCostumes(t *testing.T) {
	client := &fakeCatalogClient{costumes: []model.Costume{{ID: 1, Name: "Batman"}}}
	svc := testService(t, client)
	ctx := context.Background()

	if _, err := svc.Costumes(ctx, api.CostumeFilter{}); err != nil {
		t.Fatalf("Costumes: %v", err)
	}
	svc.InvalidateCostumes(ctx)
	if _, err := svc.Costumes(ctx, api.CostumeFilter{}); err != nil {
		t.Fatalf("Costumes after invalidation: %v", err)
	}

	if client.costumeCalls != 2 {
		t.Errorf("expected upstream re-fetch after invalidation, got %d calls", client.costumeCalls)
	}
}

func TestCatalogService_PackagesCached(t *testing.T) {
	client := &fakeCatalogClient{packages: []model.AnimationPackage{{ID: 7, Name: "Fiesta Superhéroes"}}}
	svc := testService(t, client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		pkgs, err := svc.Packages(ctx)
		if err != nil {
			t.Fatalf("Packages: %v", err)
		}
		if len(pkgs) != 1 || pkgs[0].Name != "Fiesta Superhéroes" {
			t.Fatalf("unexpected packages: %+v", pkgs)
		}
	}

	if client.packageCalls != 1 {
		t.Errorf("expected 1 upstream call, got %d", client.packageCalls)
	}
}

func TestCatalogService_RefreshRewritesCache(t *testing.T) {
	client := &fakeCatalogClient{costumes: []model.Costume{{ID: 1, Name: "Old"}}}
	svc := testService(t, client)
	ctx := context.Background()

	if _, err := svc.Costumes(ctx, api.CostumeFilter{}); err != nil {
		t.Fatalf("Costumes: %v", err)
	}

	client.costumes = []model.Costume{{ID: 1, Name: "New"}}
	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	costumes, err := svc.Costumes(ctx, api.CostumeFilter{})
	if err != nil {
		t.Fatalf("Costumes after refresh: %v", err)
	}
	if costumes[0].Name != "New" {
		t.Errorf("expected refreshed listing, got %q", costumes[0].Name)
	}
	// Refresh plus the initial read; the final read comes from cache.
	if client.costumeCalls != 2 {
		t.Errorf("expected 2 upstream calls, got %d", client.costumeCalls)
	}
}
