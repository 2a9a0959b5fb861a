package book

import (
	"context"

	"booksdemo/internal/paging"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage. Books are always
// returned with their author loaded.
type Repository interface {
	// Save inserts b when its ID is zero and otherwise writes it under its ID.
	// It returns ErrAuthorNotFound when the referenced author does not exist.
	Save(ctx context.Context, b Book) (Book, error)
	FindByID(ctx context.Context, id int64) (Book, error)
	FindAll(ctx context.Context, p paging.Pageable) ([]Book, int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
