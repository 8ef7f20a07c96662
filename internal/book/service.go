package book

import (
	"context"
)

// Service provides the catalog business logic over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new book. The ISBN must not be registered yet; a
// duplicate fails with ErrDuplicateISBN before any insert is attempted.
// The check-then-insert pair is not atomic here: the unique index on isbn
// is the backstop for concurrent creates, and Save reports a collision as
// ErrDuplicateISBN as well.
func (s *Service) Create(ctx context.Context, b Book) (Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, b.ISBN)
	if err != nil {
		return Book{}, err
	}
	if exists {
		return Book{}, ErrDuplicateISBN
	}
	return s.repo.Save(ctx, b)
}

// GetByID returns a book by its ID, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Update saves new field values for an already-persisted book. The ISBN is
// not re-checked for uniqueness here; the unique index still rejects a
// collision at the storage layer.
func (s *Service) Update(ctx context.Context, b Book) (Book, error) {
	if b.ID == 0 {
		return Book{}, ErrMissingID
	}
	return s.repo.Save(ctx, b)
}

// Delete removes a persisted book.
func (s *Service) Delete(ctx context.Context, b Book) error {
	if b.ID == 0 {
		return ErrMissingID
	}
	return s.repo.Delete(ctx, b.ID)
}

// Find returns the page of books matching the example filter.
func (s *Service) Find(ctx context.Context, f Filter, p PageRequest) (Page, error) {
	content, total, err := s.repo.FindByExample(ctx, f, p)
	if err != nil {
		return Page{}, err
	}
	if content == nil {
		content = []Book{}
	}
	return Page{
		Content:       content,
		TotalElements: total,
		Page:          p.Page,
		Size:          p.Size,
	}, nil
}
