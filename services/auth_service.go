package services

import (
	"biograph/auth"
	"biograph/errors"
	"biograph/repositories"
)

// AuthService implements the authentication gate: it is the only place
// that turns credentials into the authenticated signal (a verifying
// token) the rest of the system relies on.
type AuthService struct {
	users  repositories.IUserRepository
	issuer auth.TokenIssuer
}

func NewAuthService(users repositories.IUserRepository, issuer auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Register creates an account and returns a fresh session token.
func (s *AuthService) Register(email, password string) (string, error) {
	if err := auth.ValidateCredentials(auth.Credentials{Email: email, Password: password}); err != nil {
		return "", err
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	userID, err := s.users.CreateUser(email, hashed)
	if err != nil {
		return "", err
	}
	return s.issuer.Generate(userID, []string{"researcher"})
}

// Login verifies credentials and returns a session token.
// A missing user and a wrong password both come back as
// ErrBadCredentials to avoid leaking which one it was.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.users.GetUserByEmail(email)
	if err == errors.ErrUserNotFound {
		return "", errors.ErrBadCredentials
	}
	if err != nil {
		return "", err
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", errors.ErrBadCredentials
	}
	return s.issuer.Generate(user.ID, user.Roles)
}
