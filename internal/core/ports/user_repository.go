package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the email
	// is already registered (unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)

	// AddPlace appends placeID to the user's place list. Meant to run inside
	// a unit of work together with the matching place insert.
	AddPlace(ctx context.Context, userID, placeID string) error
	// RemovePlace pulls placeID from the user's place list.
	RemovePlace(ctx context.Context, userID, placeID string) error
}
