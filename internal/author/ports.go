package author

import (
	"context"

	"booksdemo/internal/paging"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=author

// Repository defines the contract for author storage.
type Repository interface {
	// Save inserts a when its ID is zero and upserts by ID otherwise.
	Save(ctx context.Context, a Author) (Author, error)
	FindByID(ctx context.Context, id int64) (Author, error)
	FindAll(ctx context.Context, p paging.Pageable) ([]Author, int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID removes the author and, through the foreign key, its books.
	// Deleting a missing author is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
