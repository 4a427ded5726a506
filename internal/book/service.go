package book

import (
	"context"
	"log"
)

// Service provides catalog business logic over a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create inserts a new book and returns it with its assigned id.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	if in.Category == "" {
		in.Category = DefaultCategory
	}
	return s.repo.Insert(ctx, in)
}

// FindAll returns every book in the store's natural order.
func (s *Service) FindAll(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// FindOne returns the book with the given id, or ErrNotFound.
func (s *Service) FindOne(ctx context.Context, id int64) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the provided fields onto the existing record and persists
// the result. An absent id is ErrNotFound; fields left nil keep their
// stored value.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Book, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Book{}, err
	}
	if in.Name != nil {
		existing.Name = *in.Name
	}
	if in.Description != nil {
		existing.Description = *in.Description
	}
	if in.Category != nil {
		existing.Category = *in.Category
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return Book{}, err
	}
	return existing, nil
}

// Remove deletes the book with the given id and reports whether a row was
// actually removed. Deleting an id that does not exist is not an error.
func (s *Service) Remove(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Seed populates an empty store with the demo catalog. It is invoked once
// by the process bootstrap; a non-empty store is left untouched. Returns
// the number of books inserted.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	log.Printf("seeding empty catalog with %d demo books", len(seedBooks))
	for _, in := range seedBooks {
		if _, err := s.repo.Insert(ctx, in); err != nil {
			return 0, err
		}
	}
	return len(seedBooks), nil
}
