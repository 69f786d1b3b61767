package service

import (
	"context"
	"fmt"
	"log/slog"

	"lorebook/internal/docstore"
	"lorebook/internal/domain"
	"lorebook/internal/domain/models"
	"lorebook/internal/domain/repositories"
	"lorebook/internal/domain/services"
)

// categoryService implements the CategoryService interface. Deleting a
// category never cascades to documents referencing its id.
type categoryService struct {
	store      *docstore.Store
	gate       *Gate
	categories repositories.CategoryRepository
	logger     *slog.Logger
}

// NewCategoryService creates the category catalog service.
func NewCategoryService(
	store *docstore.Store,
	gate *Gate,
	categories repositories.CategoryRepository,
	logger *slog.Logger,
) services.CategoryService {
	return &categoryService{
		store:      store,
		gate:       gate,
		categories: categories,
		logger:     logger,
	}
}

// SetCategory creates or updates the category under its id. Operator only;
// neither path is an error.
func (s *categoryService) SetCategory(ctx context.Context, caller string, req *services.SetCategoryRequest) (*models.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if err := s.gate.RequireOperator(caller); err != nil {
		return nil, err
	}

	s.store.Lock()
	defer s.store.Unlock()

	category := models.Category{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categories.Upsert(ctx, &category); err != nil {
		return nil, err
	}
	s.store.UpsertCategory(category)

	s.logger.Info("category set", "id", category.ID, "name", category.Name)

	return &category, nil
}

// DeleteCategory removes a category. Operator only.
func (s *categoryService) DeleteCategory(ctx context.Context, caller string, categoryID uint64) error {
	if err := s.gate.RequireOperator(caller); err != nil {
		return err
	}

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.CategoryByID(categoryID); !ok {
		return fmt.Errorf("%w: category %d", domain.ErrNotFound, categoryID)
	}

	if err := s.categories.Delete(ctx, categoryID); err != nil {
		return err
	}
	s.store.EraseCategory(categoryID)

	s.logger.Info("category deleted", "id", categoryID)

	return nil
}

// ListCategories returns all categories in ascending id order.
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.store.Lock()
	defer s.store.Unlock()
	return s.store.Categories(), nil
}
