package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

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

func (r *PostgresRepo) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM books WHERE isbn = $1)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var exists bool
	if err := r.db.QueryRow(timeoutCtx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by isbn: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT id, isbn, title, author, created_at, updated_at
		FROM books
		WHERE id = $1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

// Save inserts when b.ID is zero, otherwise updates the matching row.
// An update of a missing row fails with ErrNotFound rather than inserting.
// The unique index on isbn reports collisions as ErrDuplicateISBN.
func (r *PostgresRepo) Save(ctx context.Context, b Book) (Book, error) {
	if b.ID == 0 {
		return r.insert(ctx, b)
	}
	return r.update(ctx, b)
}

func (r *PostgresRepo) insert(ctx context.Context, b Book) (Book, error) {
	const query = `
		INSERT INTO books (isbn, title, author, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, b.ISBN, b.Title, b.Author).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Book{}, ErrDuplicateISBN
		}
		return Book{}, fmt.Errorf("insert book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) update(ctx context.Context, b Book) (Book, error) {
	const query = `
		UPDATE books
		SET isbn = $2, title = $3, author = $4, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, b.ID, b.ISBN, b.Title, b.Author).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Book{}, ErrDuplicateISBN
		}
		return Book{}, fmt.Errorf("update book: %w", err)
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) FindByExample(ctx context.Context, f Filter, p PageRequest) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.Title != "" {
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", argn))
		args = append(args, "%"+f.Title+"%")
		argn++
	}

	if f.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, "%"+f.Author+"%")
		argn++
	}

	if f.ISBN != "" {
		clauses = append(clauses, fmt.Sprintf("isbn ILIKE $%d", argn))
		args = append(args, "%"+f.ISBN+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	sortCol := "id"
	switch p.Sort {
	case "title":
		sortCol = "title"
	case "author":
		sortCol = "author"
	case "created_at":
		sortCol = "created_at"
	}

	order := "ASC"
	if p.Desc {
		order = "DESC"
	}

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, isbn, title, author, created_at, updated_at
		FROM books
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d`,
		where, sortCol, order, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, p.Size, p.Offset())
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.ISBN, &b.Title, &b.Author, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
