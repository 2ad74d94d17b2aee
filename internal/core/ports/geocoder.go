package ports

import (
	"context"

	"github.com/yourplaces/places-api/internal/core/domain"
)

// Geocoder resolves a free-text address to coordinates. Returns
// domain.ErrLocationNotFound when the upstream service reports zero results.
// Each call is a fresh lookup; no caching, no retries.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Location, error)
}
