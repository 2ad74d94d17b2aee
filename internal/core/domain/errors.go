package domain

import "errors"

var ErrPlaceNotFound = errors.New("place not found")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotOwner = errors.New("requester does not own this place")
var ErrLocationNotFound = errors.New("no location found for address")
var ErrWriteFailed = errors.New("write failed")
