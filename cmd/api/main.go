package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"booksdemo/internal/author"
	"booksdemo/internal/book"
	"booksdemo/internal/config"
	"booksdemo/internal/httpx"
	"booksdemo/internal/platform/logger"
	"booksdemo/internal/platform/postgres"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", postgres.RedactDSN(cfg.Database.DSN)).Msg("cannot open database")
	}
	defer dbPool.Close()

	authorService := author.NewService(author.NewPostgresRepo(dbPool, cfg.Database.QueryTimeout))
	bookService := book.NewService(book.NewPostgresRepo(dbPool, cfg.Database.QueryTimeout))

	router := newRouter(authorService, bookService, dbPool.Ping)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.App.Environment == "production"),
		httpx.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
	}
	if cfg.HTTP.RateLimitRPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(ctx, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
		middlewares = append(middlewares, limiter.Middleware)
	}

	httpServer := &http.Server{
		Addr:         cfg.App.Addr,
		Handler:      httpx.Chain(router, middlewares...),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.App.Addr).Str("env", cfg.App.Environment).Msg("starting server")
		serverErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
