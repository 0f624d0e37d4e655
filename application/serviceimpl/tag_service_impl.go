package serviceimpl

import (
	"context"
	"time"

	"taskhive/domain/dto"
	"taskhive/domain/models"
	"taskhive/domain/repositories"
	"taskhive/domain/services"
	"taskhive/pkg/logger"

	"github.com/google/uuid"
)

type TagServiceImpl struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) services.TagService {
	return &TagServiceImpl{tagRepo: tagRepo}
}

func (s *TagServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTagRequest) (*models.Tag, error) {
	tag := &models.Tag{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		logger.ErrorContext(ctx, "Failed to create tag", "user_id", userID, "error", err)
		return nil, err
	}

	return tag, nil
}

func (s *TagServiceImpl) Get(ctx context.Context, userID, id uuid.UUID) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return tag, nil
}

func (s *TagServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error) {
	return s.tagRepo.ListByUser(ctx, userID)
}

func (s *TagServiceImpl) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, asNotFound(err)
	}

	if req.Name != nil {
		tag.Name = *req.Name
	}
	tag.UpdatedAt = time.Now()

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		return nil, asNotFound(err)
	}

	return tag, nil
}

func (s *TagServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.tagRepo.Delete(ctx, userID, id); err != nil {
		return asNotFound(err)
	}
	logger.InfoContext(ctx, "Tag deleted", "user_id", userID, "tag_id", id)
	return nil
}
