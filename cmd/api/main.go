package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/biras/biras-api/internal/config"
	"github.com/biras/biras-api/internal/domain/booking"
	"github.com/biras/biras-api/internal/domain/cart"
	"github.com/biras/biras-api/internal/domain/catalog"
	"github.com/biras/biras-api/internal/domain/submission"
	"github.com/biras/biras-api/internal/middleware"
	"github.com/biras/biras-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Bira's storefront API")

	rules, err := booking.NewRules(
		cfg.BookingOpenTime,
		cfg.BookingCloseTime,
		cfg.BookingSpecialCloseTime,
		cfg.BookingSlotInterval,
		cfg.BookingExcludedDays,
		cfg.BookingSpecialDays,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid booking rules")
	}

	// ---------- Repositories / services ----------
	catalogRepo := catalog.NewRepository()
	cartService := cart.NewService()
	bookingEngine := booking.NewEngine(rules)
	bookingService := booking.NewService(bookingEngine, catalogRepo, cartService, cfg.SubmitDelay)
	submissionService := submission.NewService(cfg.SubmissionMaxFileSize, cfg.SubmitDelay)

	// ---------- Handlers ----------
	catalogHandler := catalog.NewHandler(catalogRepo)
	cartHandler := cart.NewHandler(cartService, catalogRepo)
	bookingHandler := booking.NewHandler(bookingService)
	submissionHandler := submission.NewHandler(submissionService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/catalog", catalogHandler.Routes())
		r.Mount("/cart", cartHandler.Routes())
		r.Mount("/bookings", bookingHandler.Routes())
		r.Mount("/submissions", submissionHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
