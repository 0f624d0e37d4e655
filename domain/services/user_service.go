package services

import (
	"context"

	"taskhive/domain/dto"
	"taskhive/domain/models"

	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*AuthTokens, *models.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	IssueTokens(ctx context.Context, user *models.User) (*AuthTokens, error)
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
}
