package domain

// User models a registered account that owns places.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Image        string   `json:"image"`
	PasswordHash string   `json:"-"`
	PlaceIDs     []string `json:"places"`
}
