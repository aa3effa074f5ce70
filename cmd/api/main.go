package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/FlorinDG/coral-remodeling-pro/internal/bookings"
	"github.com/FlorinDG/coral-remodeling-pro/internal/cache"
	"github.com/FlorinDG/coral-remodeling-pro/internal/config"
	"github.com/FlorinDG/coral-remodeling-pro/internal/db"
	"github.com/FlorinDG/coral-remodeling-pro/internal/leads"
	"github.com/FlorinDG/coral-remodeling-pro/internal/middleware"
	"github.com/FlorinDG/coral-remodeling-pro/internal/notifications"
	"github.com/FlorinDG/coral-remodeling-pro/internal/portal"
	"github.com/FlorinDG/coral-remodeling-pro/internal/validation"
	"github.com/FlorinDG/coral-remodeling-pro/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("mongo connected")
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		logger.Error("index creation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	mailer := notifications.NewResendClient(cfg.ResendAPIKey, cfg.ResendFromEmail, cfg.ResendFromName, cfg.NotifyEmail, cfg.Timezone)
	if mailer == nil {
		logger.Info("resend mailer disabled")
	} else {
		logger.Info("resend mailer enabled", slog.String("sender", cfg.ResendFromEmail), slog.String("recipient", cfg.NotifyEmail))
	}

	val := validation.New()
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	leadsRepo := leads.NewRepository(cols.Leads)
	leadsService := leads.NewService(leadsRepo, cfg.Timezone, leadsNotifier(mailer))
	leadsHandler := leads.NewHandler(leadsService, val, logger)

	bookingsRepo := bookings.NewRepository(cols.Bookings)
	bookingsService := bookings.NewService(bookingsRepo, cfg.Timezone, bookingsNotifier(mailer))
	bookingsHandler := bookings.NewHandler(bookingsService, val, logger)

	portalRepo := portal.NewRepository(cols)
	portalService := portal.NewService(portalRepo, cfg.Timezone)
	portalHandler := portal.NewHandler(portalService, val, cacheStore, cacheTTL, logger)

	webHandler := web.NewHandler(portalService, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	leadsLimiter := middleware.NewRateLimiter(cfg.RateLimitLeads, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	bookingsLimiter := middleware.NewRateLimiter(cfg.RateLimitBookings, time.Duration(cfg.RateLimitWindowSec)*time.Second)

	registerAPIRoutes := func(api chi.Router) {
		api.With(leadsLimiter.Middleware).Post("/leads", leadsHandler.Create)
		api.Get("/leads", leadsHandler.List)
		api.Patch("/leads/{id}/status", leadsHandler.UpdateStatus)

		api.With(bookingsLimiter.Middleware).Post("/bookings", bookingsHandler.Create)
		api.Get("/bookings", bookingsHandler.List)
		api.Get("/bookings/slots", bookingsHandler.Slots)
		api.Patch("/bookings/{id}/status", bookingsHandler.UpdateStatus)

		api.Post("/portals", portalHandler.Create)
		api.Get("/portals", portalHandler.List)
		api.Get("/portals/slug/{slug}", portalHandler.GetBySlug)
		api.Post("/portals/tasks", portalHandler.CreateTask)
		api.Put("/portals/tasks", portalHandler.UpdateTask)
		api.Post("/portals/documents", portalHandler.CreateDocument)
		api.Post("/portals/media", portalHandler.CreateMedia)
		api.Post("/portals/messages", portalHandler.CreateMessage)
		api.Post("/portals/updates", portalHandler.CreateUpdate)
		api.Get("/portals/{id}", portalHandler.GetByID)
	}

	// Supports /api/... and the versioned alias /api/v1/... .
	r.Route("/api", registerAPIRoutes)
	r.Route("/api/v1", registerAPIRoutes)

	webHandler.Routes(r)

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}

// A nil *ResendClient must reach the services as a nil interface so the
// disabled-mailer path short-circuits instead of calling through a nil pointer.
func leadsNotifier(mailer *notifications.ResendClient) leads.Notifier {
	if mailer == nil {
		return nil
	}
	return mailer
}

func bookingsNotifier(mailer *notifications.ResendClient) bookings.Notifier {
	if mailer == nil {
		return nil
	}
	return mailer
}
