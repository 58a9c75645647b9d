package service

import (
	"context"
	"fmt"

	"cinereserve/internal/auth"
	apperrors "cinereserve/internal/errors"
	"cinereserve/internal/model"
	"cinereserve/internal/repository"
)

// dummyHash is compared against when the email is unknown, so that both login
// failure branches cost one bcrypt verification. Never matches any password.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password. The store's unique
// index on email is the sole duplicate check; any insert rejection is
// reported as the generic ErrRegistration without distinguishing the cause.
func (s *authService) Register(ctx context.Context, email, password string) (*model.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.ErrRegistration
	}

	return user, nil
}

// Login authenticates a user and mints a session token. Unknown email and
// wrong password return the same error, after the same amount of work.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		auth.CheckPassword(password, dummyHash)
		return "", apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}
