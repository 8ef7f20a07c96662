package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrDuplicateISBN is a business error: the ISBN is already registered.
// Its message is surfaced to end users as-is.
var ErrDuplicateISBN = errors.New("isbn already registered")

// ErrMissingID indicates a caller bug: update/delete on an unsaved book.
var ErrMissingID = errors.New("book id is required")

// Book represents a book entity. A zero ID means the book has not been
// persisted yet; the store assigns the ID on first insert.
type Book struct {
	ID        int64     `json:"id"`
	ISBN      string    `json:"isbn"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter is a sparse example template for searching. Empty fields are
// unconstrained; populated fields match as case-insensitive substrings,
// combined with AND.
type Filter struct {
	Title  string
	Author string
	ISBN   string
}

// PageRequest defines pagination and ordering for Find. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
	Sort string
	Desc bool
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is the paginated result envelope: the matching books for the
// requested page plus the total match count and the echoed paging parameters.
type Page struct {
	Content       []Book `json:"content"`
	TotalElements int    `json:"total_elements"`
	Page          int    `json:"page"`
	Size          int    `json:"size"`
}
