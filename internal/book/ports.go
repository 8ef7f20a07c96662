package book

import (
	"context"
)

// Repository defines the contract for book data storage.
//
// Save inserts when the book has no ID and assigns one; with a non-zero ID it
// updates the matching row and fails with ErrNotFound when no row matches.
// Delete fails with ErrNotFound when no row matches. ExistsByISBN is an exact,
// case-sensitive equality check; FindByExample is the case-insensitive
// substring search described on Filter.
type Repository interface {
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Save(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, id int64) error
	FindByExample(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error)
}
