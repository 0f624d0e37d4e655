package serviceimpl

import (
	"context"
	"testing"
	"time"

	"taskhive/domain/dto"
	"taskhive/domain/models"
	"taskhive/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func newUserServiceForTests() (*UserServiceImpl, *fakeUserRepo) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil, "unit-test-secret", 30*time.Minute, 7*24*time.Hour)
	return svc.(*UserServiceImpl), repo
}

func TestUserServiceRegisterAndLogin(t *testing.T) {
	svc, _ := newUserServiceForTests()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", user.Password, "password must be hashed")

	tokens, loggedIn, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	userCtx, err := utils.ValidateAccessToken(tokens.AccessToken, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.ID)
}

func TestUserServiceRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceForTests()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "bob@example.com",
		Username: "bob",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{
		Email:    "bob@example.com",
		Username: "bob2",
		Password: "password123",
	})
	assert.EqualError(t, err, "email: email already exists")
}

func TestUserServiceLoginWrongPassword(t *testing.T) {
	svc, _ := newUserServiceForTests()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "carol@example.com",
		Username: "carol",
		Password: "password123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong",
	})
	assert.Error(t, err)
}

func TestUserServiceRefreshRoundTrip(t *testing.T) {
	svc, _ := newUserServiceForTests()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "dave@example.com",
		Username: "dave",
		Password: "password123",
	})
	require.NoError(t, err)

	tokens, err := svc.IssueTokens(ctx, user)
	require.NoError(t, err)

	accessToken, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)

	userCtx, err := utils.ValidateAccessToken(accessToken, "unit-test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, userCtx.ID)

	// An access token is not accepted on the refresh path.
	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.Error(t, err)
}

func TestUserServiceChangePasswordRequiresCurrent(t *testing.T) {
	svc, _ := newUserServiceForTests()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "erin@example.com",
		Username: "erin",
		Password: "password123",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "nope",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	assert.Error(t, err)

	err = svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{
		Email:    "erin@example.com",
		Password: "newpassword1",
	})
	assert.NoError(t, err)
}
