package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// PlaceService orchestrates the place write path. Creates and deletes touch
// two documents (the place and its owner's place list), so both run inside a
// unit of work; updates touch a single document and do not.
type PlaceService struct {
	places  ports.PlaceRepository
	users   ports.UserRepository
	uow     ports.UnitOfWork
	geo     ports.Geocoder
	cleanup ports.FileDiscarder
	logger  zerolog.Logger
}

func NewPlaceService(
	places ports.PlaceRepository,
	users ports.UserRepository,
	uow ports.UnitOfWork,
	geo ports.Geocoder,
	cleanup ports.FileDiscarder,
	logger zerolog.Logger,
) *PlaceService {
	return &PlaceService{
		places:  places,
		users:   users,
		uow:     uow,
		geo:     geo,
		cleanup: cleanup,
		logger:  logger,
	}
}

func (s *PlaceService) GetPlace(ctx context.Context, placeID string) (*domain.Place, error) {
	return s.places.FindByID(ctx, placeID)
}

func (s *PlaceService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return s.places.FindByOwner(ctx, ownerID)
}

// CreatePlace resolves the address, verifies the owner exists, then inserts
// the place and appends its id to the owner's list in one transaction. A
// failure anywhere before commit leaves neither document persisted.
func (s *PlaceService) CreatePlace(ctx context.Context, input ports.CreatePlaceInput) (*domain.Place, error) {
	location, err := s.geo.Resolve(ctx, input.Address)
	if err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	if _, err := s.users.FindByID(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	place := &domain.Place{
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Location:    location,
		Image:       input.Image,
		OwnerID:     input.OwnerID,
	}

	var created *domain.Place
	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		created, err = s.places.Insert(txCtx, place)
		if err != nil {
			return err
		}
		return s.users.AddPlace(txCtx, input.OwnerID, created.ID)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.OwnerID).Msg("create place transaction failed")
		return nil, fmt.Errorf("create place: %w: %w", domain.ErrWriteFailed, err)
	}

	s.logger.Info().Str("place_id", created.ID).Str("owner_id", created.OwnerID).Msg("place created")
	return created, nil
}

// UpdatePlace mutates title and description. The existence check runs before
// the ownership check: updating an absent place is 404 for everyone.
func (s *PlaceService) UpdatePlace(ctx context.Context, input ports.UpdatePlaceInput) (*domain.Place, error) {
	place, err := s.places.FindByID(ctx, input.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	if place.OwnerID != input.RequesterID {
		return nil, fmt.Errorf("update place: %w", domain.ErrNotOwner)
	}

	place.Title = input.Title
	place.Description = input.Description

	if err := s.places.Update(ctx, place); err != nil {
		return nil, fmt.Errorf("update place: %w: %w", domain.ErrWriteFailed, err)
	}
	return place, nil
}

// DeletePlace removes the place document and the owner's reference to it in
// one transaction, then schedules removal of the stored image. Image cleanup
// is best effort and never influences the result.
func (s *PlaceService) DeletePlace(ctx context.Context, placeID, requesterID string) error {
	place, err := s.places.FindByID(ctx, placeID)
	if err != nil {
		return fmt.Errorf("delete place: %w", err)
	}
	if place.OwnerID != requesterID {
		return fmt.Errorf("delete place: %w", domain.ErrNotOwner)
	}

	err = s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.places.Delete(txCtx, place.ID); err != nil {
			return err
		}
		return s.users.RemovePlace(txCtx, place.OwnerID, place.ID)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("place_id", placeID).Msg("delete place transaction failed")
		return fmt.Errorf("delete place: %w: %w", domain.ErrWriteFailed, err)
	}

	if place.Image != "" {
		s.cleanup.Discard(place.Image)
	}

	s.logger.Info().Str("place_id", place.ID).Str("owner_id", place.OwnerID).Msg("place deleted")
	return nil
}
