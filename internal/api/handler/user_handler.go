package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/domain"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
	store   ports.FileStore
}

func NewUserHandler(service ports.UserService, store ports.FileStore) *UserHandler {
	return &UserHandler{service: service, store: store}
}

// List handles GET /api/users.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersEnvelope
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return c.JSON(http.StatusOK, usersEnvelope{Users: out})
}

// Get handles GET /api/users/:userId.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  userEnvelope
// @Failure      404     {object}  messageResponse
// @Router       /api/users/{userId} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: toUserResponse(user)})
}

// Signup handles POST /api/users/signup (multipart: image + name/email/password).
//
// @Summary      Register a new account
// @Tags         users
// @Accept       mpfd
// @Produce      json
// @Param        name      formData  string  true  "Display name"
// @Param        email     formData  string  true  "Email (unique)"
// @Param        password  formData  string  true  "Password (min 6 chars)"
// @Param        image     formData  file    true  "Avatar image"
// @Success      201  {object}  authResponse
// @Failure      422  {object}  messageResponse
// @Router       /api/users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	req := signupRequest{
		Name:     c.FormValue("name"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid inputs: "+err.Error())
	}

	imagePath, err := saveUpload(c, h.store)
	if err != nil {
		return err
	}

	result, err := h.service.Signup(c.Request().Context(), ports.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    imagePath,
	})
	if err != nil {
		// The signup failed after the upload was stored; drop the file.
		_ = h.store.Remove(imagePath)
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, authResponse{
		UserID: result.UserID,
		Email:  result.Email,
		Token:  result.Token,
		Image:  result.Image,
	})
}

// Login handles POST /api/users/login.
//
// @Summary      Log in with email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  messageResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid inputs: "+err.Error())
	}

	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, authResponse{
		UserID: result.UserID,
		Email:  result.Email,
		Token:  result.Token,
		Image:  result.Image,
	})
}
