// Package view derives the rendered book list from the raw catalog:
// category filter, text search, stable sort, then page slicing. Every
// stage is pure; the same inputs always produce the same page.
package view

import (
	"sort"
	"strings"

	"bookcatalog/internal/book"
)

// AllCategories is the sentinel that disables the category filter.
const AllCategories = "all"

// DefaultPageSize matches the UI default.
const DefaultPageSize = 10

// PageSizes are the selectable page sizes.
var PageSizes = []int{10, 25, 50, 100}

// SortField selects the book attribute the list is ordered by.
type SortField string

const (
	SortByID       SortField = "id"
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
)

// Direction selects ascending or descending order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Options are the pipeline inputs.
type Options struct {
	Category  string
	Query     string
	SortField SortField
	Direction Direction
	Page      int
	PageSize  int
}

// Page is one rendered page of the derived view.
type Page struct {
	Items      []book.Book
	TotalItems int // count after filtering and searching
	TotalPages int
	Number     int
	Size       int
}

// Apply runs the full derivation: category filter, search, stable sort,
// page slice. The input slice is never mutated.
func Apply(books []book.Book, opts Options) Page {
	result := Filter(books, opts.Category)
	result = Search(result, opts.Query)
	result = Sort(result, opts.SortField, opts.Direction)
	return Paginate(result, opts.Page, opts.PageSize)
}

// Filter keeps books in the selected category. AllCategories (or an empty
// selection) keeps everything.
func Filter(books []book.Book, category string) []book.Book {
	if category == "" || category == AllCategories {
		return books
	}
	out := make([]book.Book, 0, len(books))
	for _, b := range books {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

// Search keeps books whose name, description, or category contains the
// trimmed query, case-insensitively. A blank query keeps everything.
func Search(books []book.Book, query string) []book.Book {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return books
	}
	out := make([]book.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Description), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			out = append(out, b)
		}
	}
	return out
}

// Sort returns a copy ordered by the given field and direction. String
// fields compare case-insensitively; ties keep their pre-sort relative
// order.
func Sort(books []book.Book, field SortField, dir Direction) []book.Book {
	sorted := make([]book.Book, len(books))
	copy(sorted, books)

	less := func(a, b book.Book) bool {
		switch field {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByCategory:
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Paginate slices the list into the requested page. Pages are 1-based; a
// page past the end yields an empty item list.
func Paginate(books []book.Book, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	total := len(books)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	items := make([]book.Book, end-start)
	copy(items, books[start:end])

	return Page{
		Items:      items,
		TotalItems: total,
		TotalPages: totalPages,
		Number:     page,
		Size:       size,
	}
}

// Categories returns the distinct categories present in the list, sorted.
// Books without a category count as the default.
func Categories(books []book.Book) []string {
	seen := make(map[string]bool)
	for _, b := range books {
		category := b.Category
		if category == "" {
			category = book.DefaultCategory
		}
		seen[category] = true
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}
