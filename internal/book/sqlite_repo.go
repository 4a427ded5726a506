package book

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens the catalog database file, creating it if it does not
// exist, and configures it for single-writer use.
//
// SQLite supports one writer at a time; limiting the pool to a single
// connection avoids SQLITE_BUSY errors under concurrent mutations. WAL
// mode keeps reads available while a write is in flight.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	return db, nil
}

// SQLiteRepo stores books in a single SQLite file.
type SQLiteRepo struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLiteRepo(db *sql.DB, timeout time.Duration) *SQLiteRepo {
	return &SQLiteRepo{db: db, timeout: timeout}
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SQLiteRepo) Insert(ctx context.Context, in CreateInput) (Book, error) {
	const query = `INSERT INTO books (name, description, category) VALUES (?, ?, ?)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, query, in.Name, in.Description, in.Category)
	if err != nil {
		return Book{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Book{}, err
	}
	return Book{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
	}, nil
}

func (r *SQLiteRepo) List(ctx context.Context) ([]Book, error) {
	const query = `SELECT id, name, description, category FROM books ORDER BY id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.QueryContext(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Category); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) Get(ctx context.Context, id int64) (Book, error) {
	const query = `SELECT id, name, description, category FROM books WHERE id = ?`

	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRowContext(timeoutCtx, query, id).Scan(&b.ID, &b.Name, &b.Description, &b.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *SQLiteRepo) Update(ctx context.Context, b Book) error {
	const query = `UPDATE books SET name = ?, description = ?, category = ? WHERE id = ?`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.ExecContext(timeoutCtx, query, b.Name, b.Description, b.Category, b.ID)
	return err
}

func (r *SQLiteRepo) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM books WHERE id = ?`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	res, err := r.db.ExecContext(timeoutCtx, query, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *SQLiteRepo) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM books`

	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRowContext(timeoutCtx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
