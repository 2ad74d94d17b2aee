package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// CreatePlaceInput carries all data needed to create a place. OwnerID is the
// authenticated principal, never client-supplied.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Image       string
	OwnerID     string
}

// UpdatePlaceInput carries the mutable fields of a place. RequesterID is the
// authenticated principal used for the ownership check.
type UpdatePlaceInput struct {
	PlaceID     string
	RequesterID string
	Title       string
	Description string
}

// PlaceService defines use-case operations for places.
type PlaceService interface {
	GetPlace(ctx context.Context, placeID string) (*domain.Place, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Place, error)
	CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error)
	UpdatePlace(ctx context.Context, input UpdatePlaceInput) (*domain.Place, error)
	DeletePlace(ctx context.Context, placeID, requesterID string) error
}
