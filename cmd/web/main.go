package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hoteltheretinue/retinue-web/internal/hotelapi"
	"github.com/hoteltheretinue/retinue-web/internal/proxy"
	"github.com/hoteltheretinue/retinue-web/internal/session"
	"github.com/hoteltheretinue/retinue-web/internal/web"
	"github.com/hoteltheretinue/retinue-web/pkg/config"
	"github.com/hoteltheretinue/retinue-web/pkg/logger"
	mw "github.com/hoteltheretinue/retinue-web/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	store := newSessionStore(cfg)
	sessions := session.NewManager(store, session.Config{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		CookieTTL:  cfg.Session.CookieTTL,
		SessionTTL: cfg.Session.SessionTTL,
		DurableTTL: cfg.Session.DurableTTL,
	})

	api := hotelapi.New(cfg.API.RemoteBase)

	pages, err := web.New(api, sessions)
	if err != nil {
		logger.Error("Failed to initialize page handlers", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("web"))
	r.Use(mw.Logging)
	r.Use(mw.Recover)
	r.Use(mw.Health)

	// Same-origin proxy for browser calls during development. CORS is
	// scoped to this subtree; the rendered pages never need it.
	r.Route("/api/proxy", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
		r.Mount("/", proxy.New(cfg.API.RemoteBase).Routes())
	})

	r.Mount("/", pages.Routes())

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down web service...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Web shutdown error", "error", err)
		}
	}()

	logger.Info("Starting web service", "port", cfg.Server.Port, "remote_api", cfg.API.RemoteBase)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Web server error", "error", err)
		os.Exit(1)
	}
}

// newSessionStore prefers Redis and falls back to the in-memory store
// so local development works without any services running.
func newSessionStore(cfg *config.Config) session.Store {
	if cfg.Redis.URL == "" {
		logger.Warn("REDIS_URL not set, using in-memory session store")
		return session.NewMemoryStore()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("Invalid REDIS_URL, using in-memory session store", "error", err)
		return session.NewMemoryStore()
	}
	return session.NewRedisStore(redis.NewClient(opts))
}
