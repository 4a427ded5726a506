package book

import (
	"context"
)

// Repository defines the contract for book data storage.
type Repository interface {
	Insert(ctx context.Context, in CreateInput) (Book, error)
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id int64) (Book, error)
	Update(ctx context.Context, b Book) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}
