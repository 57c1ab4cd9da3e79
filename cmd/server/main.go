package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dulee/content-api/pkg/contentapi"
	"github.com/dulee/content-api/pkg/contentapi/api"
	"github.com/dulee/content-api/pkg/contentapi/config"
	storememory "github.com/dulee/content-api/pkg/contentapi/store/memory"
	usermemory "github.com/dulee/content-api/pkg/contentapi/users/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	users, err := cfg.LoadUsers()
	if err != nil {
		slog.Error("Failed to load user seed", "error", err)
		os.Exit(1)
	}

	seed, err := cfg.LoadContents()
	if err != nil {
		slog.Error("Failed to load content seed", "error", err)
		os.Exit(1)
	}

	store := storememory.New()
	ctx := context.Background()
	for _, content := range seed {
		if err := store.Append(ctx, &content); err != nil {
			slog.Warn("Skipping seed content", "content_id", content.ID.String(), "error", err)
		}
	}

	svc, err := contentapi.New(
		contentapi.WithStore(store),
		contentapi.WithUsers(usermemory.New(users...)),
	)
	if err != nil {
		slog.Error("Failed to create service", "error", err)
		os.Exit(1)
	}

	handler := api.NewContentHandler(svc)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/", handler.Routes())

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Content API server starting",
			"port", cfg.Port,
			"env", cfg.Environment,
			"users", len(users),
			"seed_contents", store.Len(),
		)
		slog.Info("Serving", "url", fmt.Sprintf("http://localhost:%s", cfg.Port))

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}
