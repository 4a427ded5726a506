package book

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("returns book with assigned id", func(t *testing.T) {
		in := CreateInput{Name: "Zero Waste Cities", Description: "Strategies for municipalities.", Category: "Municipal"}
		mockRepo.EXPECT().Insert(gomock.Any(), in).Return(Book{ID: 7, Name: in.Name, Description: in.Description, Category: in.Category}, nil)

		created, err := service.Create(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, in.Name, created.Name)
	})

	t.Run("defaults category when omitted", func(t *testing.T) {
		expected := CreateInput{Name: "Untitled", Description: "No category given.", Category: DefaultCategory}
		mockRepo.EXPECT().Insert(gomock.Any(), expected).Return(Book{ID: 8, Name: expected.Name, Description: expected.Description, Category: DefaultCategory}, nil)

		created, err := service.Create(context.Background(), CreateInput{Name: "Untitled", Description: "No category given."})

		require.NoError(t, err)
		assert.Equal(t, DefaultCategory, created.Category)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	existing := Book{ID: 3, Name: "Soil Regeneration", Description: "Restoring depleted soils.", Category: "Organic"}

	t.Run("merges only provided fields", func(t *testing.T) {
		newName := "Soil Regeneration, 2nd Edition"
		mockRepo.EXPECT().Get(gomock.Any(), int64(3)).Return(existing, nil)
		mockRepo.EXPECT().Update(gomock.Any(), Book{
			ID:          3,
			Name:        newName,
			Description: existing.Description,
			Category:    existing.Category,
		}).Return(nil)

		updated, err := service.Update(context.Background(), 3, UpdateInput{Name: &newName})

		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
		assert.Equal(t, existing.Description, updated.Description)
		assert.Equal(t, existing.Category, updated.Category)
	})

	t.Run("overwrites every provided field", func(t *testing.T) {
		newName := "Renamed"
		newDescription := "Rewritten."
		newCategory := "Hazardous"
		mockRepo.EXPECT().Get(gomock.Any(), int64(3)).Return(existing, nil)
		mockRepo.EXPECT().Update(gomock.Any(), Book{ID: 3, Name: newName, Description: newDescription, Category: newCategory}).Return(nil)

		updated, err := service.Update(context.Background(), 3, UpdateInput{
			Name:        &newName,
			Description: &newDescription,
			Category:    &newCategory,
		})

		require.NoError(t, err)
		assert.Equal(t, Book{ID: 3, Name: newName, Description: newDescription, Category: newCategory}, updated)
	})

	t.Run("absent id is not found", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), int64(99)).Return(Book{}, ErrNotFound)

		_, err := service.Update(context.Background(), 99, UpdateInput{})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("absent id is a normal false, not an error", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(42)).Return(false, nil)

		removed, err := service.Remove(context.Background(), 42)

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("existing id reports true", func(t *testing.T) {
		mockRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil)

		removed, err := service.Remove(context.Background(), 1)

		require.NoError(t, err)
		assert.True(t, removed)
	})
}

func TestService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("populates an empty store", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any()).Return(0, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(Book{}, nil).Times(len(seedBooks))

		added, err := service.Seed(context.Background())

		require.NoError(t, err)
		assert.Equal(t, len(seedBooks), added)
	})

	t.Run("leaves a non-empty store untouched", func(t *testing.T) {
		mockRepo.EXPECT().Count(gomock.Any()).Return(12, nil)

		added, err := service.Seed(context.Background())

		require.NoError(t, err)
		assert.Zero(t, added)
	})
}
