package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/securepass/securepass-go/internal/config"
	"github.com/securepass/securepass-go/internal/handler"
	"github.com/securepass/securepass-go/internal/middleware"
	"github.com/securepass/securepass-go/internal/repository"
	"github.com/securepass/securepass-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService())
	contentHandler := handler.NewContentHandler(service.NewContentAgent(service.HTMLSource{}))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/estimate", genHandler.HandleEstimate)
	r.Post("/api/v1/content/message", contentHandler.HandleMessage)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})

	// Profiles and settings sync need the database.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, profile routes disabled", "error", err)
	} else {
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := repository.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			slog.Error("creating schema", "error", err)
			os.Exit(1)
		}

		profileService := service.NewProfileService(repository.NewProfileRepository(db), cfg.JWTSecret, cfg.JWTExpiry)
		profileHandler := handler.NewProfileHandler(profileService)
		settingsHandler := handler.NewSettingsHandler(service.NewSettingsService(repository.NewMySQLSettingsStore(db)))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/api/v1/profiles/register", profileHandler.HandleRegister)
			r.Post("/api/v1/profiles/login", profileHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.ProfileAuth(cfg.JWTSecret))
			r.Get("/api/v1/profiles/me", profileHandler.HandleMe)
			r.Get("/api/v1/settings", settingsHandler.HandleGet)
			r.Put("/api/v1/settings", settingsHandler.HandlePut)
		})
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
