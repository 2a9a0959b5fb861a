package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"booksdemo/internal/config"
	"booksdemo/internal/platform/logger"
	"booksdemo/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		authorCount = flag.Int("authors", 100, "Number of authors to create")
		booksPer    = flag.Int("books", 5, "Number of books per author")
		seed        = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Init(cfg.App.Environment, cfg.Log.Level)

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	data := generate(rand.New(rand.NewSource(*seed)), *authorCount, *booksPer)
	log.Info().Int("authors", len(data)).Int("books_per_author", *booksPer).Msg("seeding")

	if err := insert(ctx, pool, data); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	var authors, books int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM authors").Scan(&authors); err != nil {
		log.Fatal().Err(err).Msg("failed to count authors")
	}
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&books); err != nil {
		log.Fatal().Err(err).Msg("failed to count books")
	}
	log.Info().Int("authors", authors).Int("books", books).Msg("seed complete")
}

// insert writes every author and its books inside one transaction. Authors go
// in a first batch so their generated ids can be used by the books batch.
func insert(ctx context.Context, pool *pgxpool.Pool, data []seedAuthor) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		authorBatch := &pgx.Batch{}
		for _, a := range data {
			authorBatch.Queue(`INSERT INTO authors (name, birthdate) VALUES ($1, $2) RETURNING id`, a.Name, a.Birthdate)
		}
		results := tx.SendBatch(ctx, authorBatch)
		ids := make([]int64, len(data))
		for i := range data {
			if err := results.QueryRow().Scan(&ids[i]); err != nil {
				results.Close()
				return err
			}
		}
		if err := results.Close(); err != nil {
			return err
		}

		bookBatch := &pgx.Batch{}
		for i, a := range data {
			for _, b := range a.Books {
				bookBatch.Queue(`INSERT INTO books (title, description, author_id) VALUES ($1, $2, $3)`, b.Title, b.Description, ids[i])
			}
		}
		return tx.SendBatch(ctx, bookBatch).Close()
	})
}
