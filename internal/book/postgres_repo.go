package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"booksdemo/internal/author"
	"booksdemo/internal/paging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

var sortColumns = map[string]string{
	"id":          "b.id",
	"title":       "b.title",
	"description": "b.description",
}

// SortProperties lists the properties books can be sorted by.
var SortProperties = []string{"id", "title", "description"}

const selectBooks = `
	SELECT b.id, b.title, b.description, a.id, a.name, a.birthdate
	FROM books b
	JOIN authors a ON a.id = b.author_id
	`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	var a author.Author
	if err := row.Scan(&b.ID, &b.Title, &b.Description, &a.ID, &a.Name, &a.Birthdate); err != nil {
		return Book{}, err
	}
	b.Author = &a
	return b, nil
}

func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	const insert = `
	WITH saved AS (
		INSERT INTO books (title, description, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, description, author_id
	)
	SELECT s.id, s.title, s.description, a.id, a.name, a.birthdate
	FROM saved s
	JOIN authors a ON a.id = s.author_id
	`
	const upsert = `
	WITH saved AS (
		INSERT INTO books (id, title, description, author_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			author_id = EXCLUDED.author_id
		RETURNING id, title, description, author_id
	)
	SELECT s.id, s.title, s.description, a.id, a.name, a.birthdate
	FROM saved s
	JOIN authors a ON a.id = s.author_id
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row pgx.Row
	if b.ID == 0 {
		row = r.db.QueryRow(timeoutCtx, insert, b.Title, b.Description, b.AuthorID())
	} else {
		row = r.db.QueryRow(timeoutCtx, upsert, b.ID, b.Title, b.Description, b.AuthorID())
	}

	saved, err := scanBook(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return Book{}, ErrAuthorNotFound
		}
		return Book{}, fmt.Errorf("save book: %w", err)
	}
	return saved, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(timeoutCtx, selectBooks+`WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) FindAll(ctx context.Context, p paging.Pageable) ([]Book, int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := selectBooks + p.OrderBy(sortColumns) + ` LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(timeoutCtx, query, p.Size, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, b)
	}
	return books, total, rows.Err()
}

func (r *PostgresRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	return err
}
