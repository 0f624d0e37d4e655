package serviceimpl

import (
	"context"
	"errors"
	"time"

	"taskhive/domain/dto"
	"taskhive/domain/models"
	"taskhive/domain/repositories"
	"taskhive/domain/services"
	"taskhive/pkg/logger"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
		AsWorkload:  true,
		Priority:    req.Priority,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if req.AsWorkload != nil {
		category.AsWorkload = *req.AsWorkload
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "user_id", userID, "error", err)
		return nil, err
	}

	return category, nil
}

func (s *CategoryServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.Category, error) {
	return s.categoryRepo.ListByUser(ctx, userID)
}

func (s *CategoryServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		category.Name = *req.Name
		category.Slug = slug.Make(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.AsWorkload != nil {
		category.AsWorkload = *req.AsWorkload
	}
	if req.Priority != nil {
		category.Priority = req.Priority
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, asNotFound(err)
	}

	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.categoryRepo.Delete(ctx, userID, id); err != nil {
		return asNotFound(err)
	}
	logger.InfoContext(ctx, "Category deleted", "user_id", userID, "category_id", id)
	return nil
}

// asNotFound collapses a record miss into the uniform not-found error; other
// errors pass through.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return services.ErrNotFound
	}
	return err
}
