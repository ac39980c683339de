package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/catalog-service/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/repository"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) (model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("category repository list categories: %w", err)
	}

	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Category{}, apperr.ErrCategoryNameRequired
	}

	id, err := uuid.NewV7()
	if err != nil {
		return model.Category{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	now := time.Now()
	category := model.Category{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return model.Category{}, apperr.ErrCategoryExists
		}
		return model.Category{}, fmt.Errorf("category repository create category: %w", err)
	}

	return category, nil
}
