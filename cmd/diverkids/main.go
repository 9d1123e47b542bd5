// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

// Command diverkids runs the DiverKids web frontend: a server-rendered site
// for browsing the costume and animation-package catalog, booking party
// services, and administering the catalog, backed by the DiverKids REST API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/jeanAguiluz/diverkids-go/internal/api"
	"github.com/jeanAguiluz/diverkids-go/internal/cache"
	"github.com/jeanAguiluz/diverkids-go/internal/config"
	"github.com/jeanAguiluz/diverkids-go/internal/handler"
	"github.com/jeanAguiluz/diverkids-go/internal/logging"
	"github.com/jeanAguiluz/diverkids-go/internal/middleware"
	"github.com/jeanAguiluz/diverkids-go/internal/ordering"
	"github.com/jeanAguiluz/diverkids-go/internal/render"
	"github.com/jeanAguiluz/diverkids-go/internal/service"
	"github.com/jeanAguiluz/diverkids-go/internal/session"
	"github.com/jeanAguiluz/diverkids-go/internal/store"
	"github.com/jeanAguiluz/diverkids-go/internal/version"
	"github.com/jeanAguiluz/diverkids-go/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// eventLogRetention is how long event log entries are kept before the
// nightly prune removes them.
const eventLogRetention = 90 * 24 * time.Hour

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		info := version.Info{Version: appVersion, GitCommit: appGitCommit, BuildTime: appBuildTime}
		_, _ = fmt.Printf("diverkids %s (commit: %s, built: %s)\n", info.Version, info.GitCommit, info.BuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("closing database", "error", err)
		}
	}(db)

	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)

	sessionManager := session.NewManager(db, cfg.IsDevelopment())
	apiClient := api.NewClient(cfg.APIURL)
	sessions := session.NewStore(sessionManager, apiClient)
	slog.Info("session manager initialized", "api_url", cfg.APIURL)

	cacheBackend, err := cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: time.Minute,
	})
	if err != nil {
		return fmt.Errorf("initializing cache: %w", err)
	}
	defer func() { _ = cacheBackend.Close() }()
	slog.Info("cache initialized", "redis", cfg.UseRedisCache())

	catalog := service.NewCatalogService(apiClient, cacheBackend,
		time.Duration(cfg.CacheTTL)*time.Second, logger)
	orderStore := ordering.NewStore(store.NewKV(db))
	queries := store.New(db)

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	loginProtection := middleware.NewLoginProtection(middleware.DefaultLoginProtectionConfig())

	// Background jobs: catalog cache refresh and event log pruning.
	scheduler := cron.New()
	if cfg.CatalogRefreshSchedule != "" {
		_, err := scheduler.AddFunc(cfg.CatalogRefreshSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := catalog.Refresh(ctx); err != nil {
				slog.Warn("catalog cache refresh failed", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("scheduling catalog refresh: %w", err)
		}
	}
	if _, err := scheduler.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := queries.PruneEvents(ctx, time.Now().Add(-eventLogRetention))
		if err != nil {
			slog.Warn("event log prune failed", "error", err)
			return
		}
		if n > 0 {
			slog.Info("event log pruned", "removed", n)
		}
	}); err != nil {
		return fmt.Errorf("scheduling event log prune: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	publicHandler := handler.NewPublicHandler(catalog, apiClient, renderer, sessions, orderStore)
	authHandler := handler.NewAuthHandler(sessions, apiClient, renderer, loginProtection, cfg.IsDevelopment())
	bookingHandler := handler.NewBookingHandler(catalog, apiClient, renderer, sessions)
	eventHandler := handler.NewEventHandler(apiClient, renderer, sessions)
	profileHandler := handler.NewProfileHandler(renderer, sessions)
	dashboardHandler := handler.NewDashboardHandler(apiClient, renderer, sessions)
	adminHandler := handler.NewAdminHandler(catalog, apiClient, renderer, sessions, orderStore, queries)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())))
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadUser(sessions))

	csrfMiddleware := middleware.CSRF(middleware.DefaultCSRFConfig(
		[]byte(cfg.SessionSecret), cfg.IsDevelopment(), cfg.ServerAddr()))

	// Public pages
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)

		r.Get(handler.RouteRoot, publicHandler.Home)
		r.Get(handler.RouteCostumes, publicHandler.Costumes)
		r.Get(handler.RouteCostumes+handler.RouteParamID, publicHandler.CostumeDetail)
		r.Get(handler.RoutePackages, publicHandler.Packages)
		r.Get(handler.RoutePackages+handler.RouteParamID, publicHandler.PackageDetail)
		r.Get(handler.RouteAbout, publicHandler.About)
		r.Get(handler.RouteContact, publicHandler.ContactForm)
		r.Post(handler.RouteContact, publicHandler.Contact)

		// Auth
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteRegister, authHandler.RegisterForm)
		r.Post(handler.RouteRegister, authHandler.Register)
		r.Post(handler.RouteLogout, authHandler.Logout)
		r.Get(handler.RouteForgotPassword, authHandler.ForgotPasswordForm)
		r.Post(handler.RouteForgotPassword, authHandler.ForgotPassword)
		r.Get(handler.RouteResetPassword, authHandler.ResetPasswordForm)
		r.Post(handler.RouteResetPassword, authHandler.ResetPassword)
	})

	// Authenticated pages
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.RequireAccess(sessions, middleware.AccessAuthenticated))

		r.Get(handler.RouteBookings, bookingHandler.List)
		r.Get(handler.RouteBookings+handler.RouteSuffixNew, bookingHandler.NewForm)
		r.Post(handler.RouteBookings, bookingHandler.Create)
		r.Get(handler.RouteBookings+handler.RouteParamID+handler.RouteSuffixEdit, bookingHandler.EditForm)
		r.Post(handler.RouteBookings+handler.RouteParamID+handler.RouteSuffixEdit, bookingHandler.Update)
		r.Post(handler.RouteBookings+handler.RouteParamID+handler.RouteSuffixCancel, bookingHandler.Cancel)
		r.Post(handler.RouteBookings+handler.RouteParamID+handler.RouteSuffixDelete, bookingHandler.Delete)

		r.Get(handler.RouteEvents, eventHandler.List)
		r.Post(handler.RouteEvents, eventHandler.Create)
		r.Post(handler.RouteEvents+handler.RouteParamID+handler.RouteSuffixCancel, eventHandler.Cancel)
		r.Post(handler.RouteEvents+handler.RouteParamID+handler.RouteSuffixDelete, eventHandler.Delete)

		r.Get(handler.RouteProfile, profileHandler.Show)
		r.Get(handler.RouteDashboard, dashboardHandler.Show)
	})

	// Admin pages
	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Use(middleware.RequireAccess(sessions, middleware.AccessAdmin))

		r.Get("/", adminHandler.Dashboard)

		r.Get(handler.RouteCostumes, adminHandler.ListCostumes)
		r.Get(handler.RouteCostumes+handler.RouteSuffixNew, adminHandler.NewCostumeForm)
		r.Post(handler.RouteCostumes, adminHandler.CreateCostume)
		r.Get(handler.RouteCostumes+handler.RouteParamID+handler.RouteSuffixEdit, adminHandler.EditCostumeForm)
		r.Post(handler.RouteCostumes+handler.RouteParamID+handler.RouteSuffixEdit, adminHandler.UpdateCostume)
		r.Post(handler.RouteCostumes+handler.RouteParamID+handler.RouteSuffixMove, adminHandler.MoveCostume)
		r.Post(handler.RouteCostumes+handler.RouteParamID+handler.RouteSuffixDelete, adminHandler.DeleteCostume)

		r.Get(handler.RoutePackages, adminHandler.ListPackages)
		r.Get(handler.RoutePackages+handler.RouteSuffixNew, adminHandler.NewPackageForm)
		r.Post(handler.RoutePackages, adminHandler.CreatePackage)
		r.Get(handler.RoutePackages+handler.RouteParamID+handler.RouteSuffixEdit, adminHandler.EditPackageForm)
		r.Post(handler.RoutePackages+handler.RouteParamID+handler.RouteSuffixEdit, adminHandler.UpdatePackage)
		r.Post(handler.RoutePackages+handler.RouteParamID+handler.RouteSuffixMove, adminHandler.MovePackage)
		r.Post(handler.RoutePackages+handler.RouteParamID+handler.RouteSuffixDelete, adminHandler.DeletePackage)

		r.Get(handler.RouteBookings, adminHandler.ListBookings)
		r.Post(handler.RouteBookings+handler.RouteParamID+handler.RouteSuffixStatus, adminHandler.UpdateBookingStatus)
		r.Post(handler.RouteBookings+handler.RouteParamID+handler.RouteSuffixPayment, adminHandler.UpdateBookingPayment)

		r.Get("/contacts", adminHandler.ListContacts)
		r.Post("/contacts"+handler.RouteParamID+handler.RouteSuffixStatus, adminHandler.UpdateContactStatus)
		r.Post("/contacts"+handler.RouteParamID+handler.RouteSuffixDelete, adminHandler.DeleteContact)

		r.Get(handler.RouteEvents, adminHandler.EventLog)
	})

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
