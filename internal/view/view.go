package view

import (
	"sort"

	"bookcatalog/internal/book"
)

// View holds the interactive state around the pipeline: the raw list, the
// active options, and the row selection. The visible page is re-derived
// from the current inputs on every read.
//
// State rules:
//   - changing the search query, category, or page size returns to page 1
//   - the selection is cleared whenever the visible page or page size
//     changes
//   - select-all covers only the rows on the current page
type View struct {
	books    []book.Book
	opts     Options
	selected map[int64]struct{}
}

func New(books []book.Book) *View {
	return &View{
		books: books,
		opts: Options{
			Category:  AllCategories,
			SortField: SortByID,
			Direction: Ascending,
			Page:      1,
			PageSize:  DefaultPageSize,
		},
		selected: make(map[int64]struct{}),
	}
}

// SetBooks replaces the raw list after a re-fetch.
func (v *View) SetBooks(books []book.Book) {
	v.books = books
}

// Page derives the currently visible page.
func (v *View) Page() Page {
	return Apply(v.books, v.opts)
}

// Options returns the active pipeline inputs.
func (v *View) Options() Options {
	return v.opts
}

// SetQuery changes the search query and returns to the first page.
func (v *View) SetQuery(query string) {
	v.opts.Query = query
	v.resetPage()
}

// SetCategory changes the category filter and returns to the first page.
func (v *View) SetCategory(category string) {
	v.opts.Category = category
	v.resetPage()
}

// SetSort toggles the direction when the field is already active,
// otherwise sorts ascending by the new field.
func (v *View) SetSort(field SortField) {
	if v.opts.SortField == field {
		if v.opts.Direction == Ascending {
			v.opts.Direction = Descending
		} else {
			v.opts.Direction = Ascending
		}
		return
	}
	v.opts.SortField = field
	v.opts.Direction = Ascending
}

// SetPage moves to the given page and clears the selection.
func (v *View) SetPage(page int) {
	v.opts.Page = page
	v.ClearSelection()
}

// SetPageSize changes the page size, returns to the first page, and
// clears the selection.
func (v *View) SetPageSize(size int) {
	v.opts.PageSize = size
	v.opts.Page = 1
	v.ClearSelection()
}

func (v *View) resetPage() {
	if v.opts.Page != 1 {
		v.opts.Page = 1
		v.ClearSelection()
	}
}

// Select marks or unmarks a single row.
func (v *View) Select(id int64, checked bool) {
	if checked {
		v.selected[id] = struct{}{}
		return
	}
	delete(v.selected, id)
}

// SelectAll checks every row on the current page, or clears the selection.
func (v *View) SelectAll(checked bool) {
	v.selected = make(map[int64]struct{})
	if !checked {
		return
	}
	for _, b := range v.Page().Items {
		v.selected[b.ID] = struct{}{}
	}
}

// Selected returns the selected ids in ascending order.
func (v *View) Selected() []int64 {
	out := make([]int64, 0, len(v.selected))
	for id := range v.selected {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ClearSelection unchecks every row.
func (v *View) ClearSelection() {
	v.selected = make(map[int64]struct{})
}
