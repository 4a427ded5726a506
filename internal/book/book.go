package book

import (
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// DefaultCategory is applied when a book is created without a category.
const DefaultCategory = "General"

// Book represents a catalog entry. The id is assigned by the store at
// insert time and never changes afterwards.
type Book struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreateInput carries the fields for a new book. Category may be left
// empty, in which case DefaultCategory is used.
type CreateInput struct {
	Name        string
	Description string
	Category    string
}

// UpdateInput carries a partial update. Fields left nil keep the value
// stored on the existing record.
type UpdateInput struct {
	Name        *string
	Description *string
	Category    *string
}
