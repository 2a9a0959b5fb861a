package book

import (
	"context"

	"booksdemo/internal/paging"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new book. Any identifier on b is discarded.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	b.ID = 0
	return s.repo.Save(ctx, b)
}

// FindAll returns one page of books.
func (s *Service) FindAll(ctx context.Context, p paging.Pageable) (paging.Page[Book], error) {
	books, total, err := s.repo.FindAll(ctx, p)
	if err != nil {
		return paging.Page[Book]{}, err
	}
	return paging.New(books, p, total), nil
}

// FindByID returns a book by its id.
func (s *Service) FindByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) IsExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// FullUpdate replaces the book stored under id with b.
func (s *Service) FullUpdate(ctx context.Context, id int64, b Book) (Book, error) {
	b.ID = id
	return s.repo.Save(ctx, b)
}

// PartialUpdate merges the non-nil fields of p into the book stored under id.
// It returns ErrNotFound when there is no such book.
func (s *Service) PartialUpdate(ctx context.Context, id int64, p Patch) (Book, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Book{}, err
	}
	existing.Apply(p)
	return s.repo.Save(ctx, existing)
}

// Delete removes a book. Deleting a missing book is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
