package handler

// messageResponse is the envelope for plain confirmations and all errors.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

// createPlaceRequest is populated from multipart form fields; the image
// arrives as a separate file part.
type createPlaceRequest struct {
	Title       string `form:"title"       validate:"required"`
	Description string `form:"description" validate:"required,min=5"`
	Address     string `form:"address"     validate:"required"`
}

type updatePlaceRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required,min=5"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from the
// domain so the JSON contract is not coupled to internal changes.

type locationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	Location    locationResponse `json:"location"`
	Image       string           `json:"image"`
	Creator     string           `json:"creator"`
}

type placeEnvelope struct {
	Place placeResponse `json:"place"`
}

type placesEnvelope struct {
	Places []placeResponse `json:"places"`
}
