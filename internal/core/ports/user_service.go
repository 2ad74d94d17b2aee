package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// SignupInput carries the data needed to register a user.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// AuthResult is returned on successful signup or login.
type AuthResult struct {
	UserID string
	Email  string
	Token  string
	Image  string
}

// UserService defines account and credential operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
