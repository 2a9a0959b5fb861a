package author

import (
	"context"

	"booksdemo/internal/paging"
)

// Service provides author operations on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new author service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new author. Any identifier on a is discarded.
func (s *Service) Create(ctx context.Context, a Author) (Author, error) {
	a.ID = 0
	return s.repo.Save(ctx, a)
}

func (s *Service) FindAll(ctx context.Context, p paging.Pageable) (paging.Page[Author], error) {
	authors, total, err := s.repo.FindAll(ctx, p)
	if err != nil {
		return paging.Page[Author]{}, err
	}
	return paging.New(authors, p, total), nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (Author, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) IsExists(ctx context.Context, id int64) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// FullUpdate replaces the author stored under id with a.
func (s *Service) FullUpdate(ctx context.Context, id int64, a Author) (Author, error) {
	a.ID = id
	return s.repo.Save(ctx, a)
}

// PartialUpdate merges the non-nil fields of p into the author stored under id.
// It returns ErrNotFound when there is no such author.
func (s *Service) PartialUpdate(ctx context.Context, id int64, p Patch) (Author, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Author{}, err
	}
	existing.Apply(p)
	return s.repo.Save(ctx, existing)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteByID(ctx, id)
}
