package author

import (
	"context"
	"errors"
	"time"

	"booksdemo/internal/paging"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"birthdate": "birthdate",
}

// SortProperties lists the properties authors can be sorted by.
var SortProperties = []string{"id", "name", "birthdate"}

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

func (r *PostgresRepo) Save(ctx context.Context, a Author) (Author, error) {
	const insert = `
	INSERT INTO authors (name, birthdate)
	VALUES ($1, $2)
	RETURNING id, name, birthdate
	`
	const upsert = `
	INSERT INTO authors (id, name, birthdate)
	VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		birthdate = EXCLUDED.birthdate
	RETURNING id, name, birthdate
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row pgx.Row
	if a.ID == 0 {
		row = r.db.QueryRow(timeoutCtx, insert, a.Name, a.Birthdate)
	} else {
		row = r.db.QueryRow(timeoutCtx, upsert, a.ID, a.Name, a.Birthdate)
	}

	var saved Author
	if err := row.Scan(&saved.ID, &saved.Name, &saved.Birthdate); err != nil {
		return Author{}, err
	}
	return saved, nil
}

func (r *PostgresRepo) FindByID(ctx context.Context, id int64) (Author, error) {
	const query = `
	SELECT id, name, birthdate
	FROM authors
	WHERE id = $1
	`
	var a Author
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&a.ID, &a.Name, &a.Birthdate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, err
	}
	return a, nil
}

func (r *PostgresRepo) FindAll(ctx context.Context, p paging.Pageable) ([]Author, int64, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, birthdate FROM authors ` + p.OrderBy(sortColumns) + ` LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(timeoutCtx, query, p.Size, p.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Birthdate); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresRepo) DeleteByID(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, `DELETE FROM authors WHERE id = $1`, id)
	return err
}
