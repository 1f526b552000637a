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
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/halcyon-ai/halcyon/internal/config"
	"github.com/halcyon-ai/halcyon/internal/db"
	"github.com/halcyon-ai/halcyon/internal/handlers"
	"github.com/halcyon-ai/halcyon/internal/metrics"
	appmiddleware "github.com/halcyon-ai/halcyon/internal/middleware"
	"github.com/halcyon-ai/halcyon/internal/token"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := context.Background()
	store, err := db.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := store.SeedAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	issuer := token.NewIssuer(cfg.JWTSecret)
	meters := metrics.New()

	articlesHandler := handlers.NewArticlesHandler(store, logger)
	authHandler := handlers.NewAuthHandler(store, issuer, logger)
	formsHandler := handlers.NewFormsHandler(store, logger)
	chatHandler := handlers.NewChatHandler(store, logger)
	adminHandler := handlers.NewAdminHandler(store, issuer, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(meters.Middleware)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}).Handler)

	r.With(appmiddleware.StaticToken(cfg.OpsToken)).Get("/metrics", meters.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Root)
		r.Get("/health", handlers.Health)

		// 5 attempts per minute per IP on credential endpoints.
		loginLimiter := appmiddleware.NewRateLimiter(5, time.Minute)
		// 30 requests per minute per IP for public reads and forms.
		publicLimiter := appmiddleware.NewRateLimiter(30, time.Minute)

		r.With(publicLimiter.Limit).Get("/articles", articlesHandler.List)
		r.With(publicLimiter.Limit).Post("/contact", formsHandler.Contact)
		r.With(publicLimiter.Limit).Post("/investor-inquiries", formsHandler.InvestorInquiry)

		r.With(loginLimiter.Limit).Post("/auth/register", authHandler.Register)
		r.With(loginLimiter.Limit).Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.RequireRealm(issuer, token.RealmUser))
			r.Get("/auth/me", authHandler.Me)
			r.Post("/chat", chatHandler.Handle)
		})

		r.With(loginLimiter.Limit).Post("/admin/login", adminHandler.Login)

		r.Route("/admin", func(r chi.Router) {
			r.Use(appmiddleware.RequireRealm(issuer, token.RealmAdmin))

			// Reachable while the rotation is still pending.
			r.Post("/change-password", adminHandler.ChangePassword)

			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.BlockPendingRotation(store.AdminMustChangePassword))
				r.Get("/stats", adminHandler.Stats)
				r.Get("/users", adminHandler.Users)
				r.Get("/contacts", adminHandler.Contacts)
				r.Get("/investor-inquiries", adminHandler.Inquiries)
				r.Get("/articles", adminHandler.Articles)
				r.Post("/articles", adminHandler.CreateArticle)
				r.Put("/articles/{id}", adminHandler.UpdateArticle)
				r.Delete("/articles/{id}", adminHandler.DeleteArticle)
				r.Post("/chat", chatHandler.Handle)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
