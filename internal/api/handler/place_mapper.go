package handler

import "github.com/yourplaces/places-api/internal/core/domain"

func toPlaceResponse(p *domain.Place) placeResponse {
	return placeResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Location: locationResponse{
			Lat: p.Location.Lat,
			Lng: p.Location.Lng,
		},
		Image:   p.Image,
		Creator: p.OwnerID,
	}
}

func toPlacesResponse(places []domain.Place) placesEnvelope {
	out := make([]placeResponse, len(places))
	for i := range places {
		out[i] = toPlaceResponse(&places[i])
	}
	return placesEnvelope{Places: out}
}
