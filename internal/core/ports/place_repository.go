package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// PlaceRepository defines persistence operations for places.
type PlaceRepository interface {
	// Insert stores a new place and returns it with its generated id.
	Insert(ctx context.Context, place *domain.Place) (*domain.Place, error)
	FindByID(ctx context.Context, id string) (*domain.Place, error)
	// FindByOwner returns all places created by ownerID. An empty result is
	// not an error.
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Place, error)
	Update(ctx context.Context, place *domain.Place) error
	Delete(ctx context.Context, id string) error
}
