package book

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is a mutex-guarded in-memory Repository. It mirrors the
// Postgres contract, including the example-matching semantics, and backs
// the tests that need a real store without a database.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books:  make(map[int64]Book),
		nextID: 1,
	}
}

func (r *MemoryRepo) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, id int64) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (r *MemoryRepo) Save(_ context.Context, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// same backstop the unique index provides in Postgres
	for _, other := range r.books {
		if other.ISBN == b.ISBN && other.ID != b.ID {
			return Book{}, ErrDuplicateISBN
		}
	}

	now := time.Now()
	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
		b.CreatedAt = now
	} else {
		existing, ok := r.books[b.ID]
		if !ok {
			return Book{}, ErrNotFound
		}
		b.CreatedAt = existing.CreatedAt
	}
	b.UpdatedAt = now

	r.books[b.ID] = b
	return b, nil
}

func (r *MemoryRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *MemoryRepo) FindByExample(_ context.Context, f Filter, p PageRequest) ([]Book, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []Book
	for _, b := range r.books {
		if matchesExample(b, f) {
			matched = append(matched, b)
		}
	}

	sortBooks(matched, p.Sort, p.Desc)

	total := len(matched)
	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// matchesExample applies the filter as case-insensitive substring tests,
// AND-combined; empty filter fields are unconstrained.
func matchesExample(b Book, f Filter) bool {
	return containsFold(b.Title, f.Title) &&
		containsFold(b.Author, f.Author) &&
		containsFold(b.ISBN, f.ISBN)
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}

func sortBooks(books []Book, key string, desc bool) {
	less := func(i, j int) bool { return books[i].ID < books[j].ID }
	switch key {
	case "title":
		less = func(i, j int) bool { return books[i].Title < books[j].Title }
	case "author":
		less = func(i, j int) bool { return books[i].Author < books[j].Author }
	case "created_at":
		less = func(i, j int) bool { return books[i].CreatedAt.Before(books[j].CreatedAt) }
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.Slice(books, less)
}
