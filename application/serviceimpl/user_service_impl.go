package serviceimpl

import (
	"context"
	"errors"
	"time"

	"taskhive/domain/dto"
	"taskhive/domain/models"
	"taskhive/domain/repositories"
	"taskhive/domain/services"
	"taskhive/infrastructure/redis"
	"taskhive/pkg/logger"
	"taskhive/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo   repositories.UserRepository
	tokenStore *redis.TokenStore // nil means stateless refresh tokens
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewUserService(userRepo repositories.UserRepository, tokenStore *redis.TokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration) services.UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already exists", "email", req.Email)
		return nil, services.NewValidationError("email", "email already exists")
	}

	existingUser, _ = s.userRepo.GetByUsername(ctx, req.Username)
	if existingUser != nil {
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, services.NewValidationError("username", "username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User created successfully", "user_id", user.ID, "email", user.Email)

	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*services.AuthTokens, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return nil, nil, errors.New("invalid email or password")
	}

	if !user.IsActive {
		logger.WarnContext(ctx, "Login failed - account disabled", "user_id", user.ID)
		return nil, nil, errors.New("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return nil, nil, errors.New("invalid email or password")
	}

	tokens, err := s.IssueTokens(ctx, user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue tokens", "user_id", user.ID, "error", err)
		return nil, nil, err
	}

	logger.InfoContext(ctx, "User logged in successfully", "user_id", user.ID)

	return tokens, user, nil
}

// IssueTokens mints an access/refresh token pair for the user and, when a
// token store is available, whitelists the refresh token so it can be revoked.
func (s *UserServiceImpl) IssueTokens(ctx context.Context, user *models.User) (*services.AuthTokens, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	tokenID := uuid.NewString()
	refreshToken, err := s.generateRefreshToken(user, tokenID)
	if err != nil {
		return nil, err
	}

	if s.tokenStore != nil {
		if err := s.tokenStore.Save(ctx, tokenID, user.ID.String(), s.refreshTTL); err != nil {
			logger.ErrorContext(ctx, "Failed to store refresh token", "user_id", user.ID, "error", err)
			return nil, err
		}
	}

	return &services.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserServiceImpl) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, tokenID, err := utils.ValidateRefreshToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", err
	}

	if s.tokenStore != nil {
		valid, err := s.tokenStore.IsValid(ctx, tokenID)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to check refresh token", "error", err)
			return "", err
		}
		if !valid {
			logger.WarnContext(ctx, "Refresh with revoked token", "user_id", userID)
			return "", utils.ErrInvalidToken
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || !user.IsActive {
		return "", utils.ErrInvalidToken
	}

	return s.generateAccessToken(user)
}

func (s *UserServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, tokenID, err := utils.ValidateRefreshToken(refreshToken, s.jwtSecret)
	if err != nil {
		// An unparseable token has nothing to revoke.
		return nil
	}

	if s.tokenStore != nil {
		return s.tokenStore.Revoke(ctx, tokenID)
	}
	return nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	return user, nil
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return services.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return services.NewValidationError("currentPassword", "current password is incorrect")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to change password", "user_id", userID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Password changed", "user_id", userID)
	return nil
}

func (s *UserServiceImpl) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := utils.JWTClaims{
		UserID:   user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *UserServiceImpl) generateRefreshToken(user *models.User, tokenID string) (string, error) {
	now := time.Now()
	claims := utils.JWTClaims{
		UserID: user.ID.String(),
		Type:   "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
