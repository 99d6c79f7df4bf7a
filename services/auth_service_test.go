package services

import (
	"testing"
	"time"

	"biograph/auth"
	"biograph/errors"
	"biograph/mocks"
	"biograph/repositories"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testIssuer() auth.TokenIssuer {
	return auth.NewTokenIssuer([]byte("test-secret"), 24*time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, testIssuer())

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		email := "test@example.com"
		password := "ComplexPass123!!"
		expectedUserID := "user-uuid"

		// Expect CreateUser to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			CreateUser(email, gomock.Not(password)).
			Return(expectedUserID, nil).
			Times(1)

		token, err := svc.Register(email, password)

		req.NoError(err)
		req.NotEmpty(token)

		claims, err := testIssuer().Verify(token)
		req.NoError(err)
		req.Equal(expectedUserID, claims.UserID)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		email := "test@example.com"
		password := "simplebutlongenough"

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register(email, password)

		req.Error(err)
		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when user already exists in repository", func(t *testing.T) {
		req := require.New(t)
		email := "duplicate@example.com"
		password := "ComplexPass123!!"

		mockRepo.EXPECT().
			CreateUser(email, gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register(email, password)

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, testIssuer())

	password := "ComplexPass123!!"
	hashed, err := auth.HashPassword(password)
	require.NoError(t, err)

	t.Run("should login successfully with correct credentials", func(t *testing.T) {
		req := require.New(t)
		email := "user@example.com"

		mockRepo.EXPECT().
			GetUserByEmail(email).
			Return(repositories.User{ID: "user-42", Email: email, PasswordHash: hashed, Roles: []string{"researcher"}}, nil)

		token, err := svc.Login(email, password)
		req.NoError(err)
		req.NotEmpty(token)
	})

	t.Run("should fail with wrong password", func(t *testing.T) {
		req := require.New(t)
		email := "user@example.com"

		mockRepo.EXPECT().
			GetUserByEmail(email).
			Return(repositories.User{ID: "user-42", Email: email, PasswordHash: hashed}, nil)

		_, err := svc.Login(email, "WrongPassword123!")
		req.ErrorIs(err, errors.ErrBadCredentials)
	})

	t.Run("should hide whether the account exists", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			GetUserByEmail("ghost@example.com").
			Return(repositories.User{}, errors.ErrUserNotFound)

		_, err := svc.Login("ghost@example.com", password)
		req.ErrorIs(err, errors.ErrBadCredentials)
	})
}
