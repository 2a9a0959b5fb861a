package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"booksdemo/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Open builds a pgx pool from cfg and waits until the database answers a ping,
// retrying with exponential backoff.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		pool, err := connect(ctx, poolCfg, cfg.ConnectTimeout)
		if err == nil {
			log.Info().Int("attempt", attempt).Str("dsn", RedactDSN(cfg.DSN)).Msg("database connection OK")
			return pool, nil
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Int("max_retries", cfg.MaxRetries).Msg("database connection failed")

		if attempt == cfg.MaxRetries {
			break
		}
		delay := cfg.RetryDelay * time.Duration(1<<uint(attempt-1))
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("connect cancelled: %w", ctx.Err())
		}
	}
	return nil, fmt.Errorf("cannot connect to %s after %d attempts: %w", RedactDSN(cfg.DSN), cfg.MaxRetries, lastErr)
}

func connect(ctx context.Context, poolCfg *pgxpool.Config, timeout time.Duration) (*pgxpool.Pool, error) {
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// RedactDSN hides the credentials part of a URL-style DSN.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
