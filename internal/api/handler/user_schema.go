package handler

import "github.com/yourplaces/places-api/internal/core/domain"

// signupRequest is populated from multipart form fields; the avatar image
// arrives as a separate file part.
type signupRequest struct {
	Name     string `form:"name"     validate:"required"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse is returned on signup and login. It never carries the
// password hash.
type authResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
	Image  string `json:"image"`
}

type userResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Image  string   `json:"image"`
	Places []string `json:"places"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type usersEnvelope struct {
	Users []userResponse `json:"users"`
}

func toUserResponse(u *domain.User) userResponse {
	places := u.PlaceIDs
	if places == nil {
		places = []string{}
	}
	return userResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Image:  u.Image,
		Places: places,
	}
}
