package domain

// Location is a resolved geographic point.
type Location struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Place is the core aggregate. OwnerID must reference an existing User, and
// the id must appear in that user's PlaceIDs list (bidirectional invariant,
// maintained transactionally by the service layer).
type Place struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Location    Location `json:"location"`
	Image       string   `json:"image"`
	OwnerID     string   `json:"creator"`
}
