package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/api/metrics"
	"github.com/yourplaces/places-api/internal/core/ports"
)

// PlaceHandler handles HTTP requests for place operations.
type PlaceHandler struct {
	service ports.PlaceService
	store   ports.FileStore
}

func NewPlaceHandler(service ports.PlaceService, store ports.FileStore) *PlaceHandler {
	return &PlaceHandler{service: service, store: store}
}

// Get handles GET /api/places/:placeId.
//
// @Summary      Get a place by id
// @Tags         places
// @Produce      json
// @Param        placeId  path      string  true  "Place id"
// @Success      200      {object}  placeEnvelope
// @Failure      404      {object}  messageResponse
// @Router       /api/places/{placeId} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	place, err := h.service.GetPlace(c.Request().Context(), c.Param("placeId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, placeEnvelope{Place: toPlaceResponse(place)})
}

// ListByUser handles GET /api/places/user/:userId. An empty list is a valid
// 200 response, not an error.
//
// @Summary      List all places created by a user
// @Tags         places
// @Produce      json
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  placesEnvelope
// @Router       /api/places/user/{userId} [get]
func (h *PlaceHandler) ListByUser(c echo.Context) error {
	places, err := h.service.ListByOwner(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlacesResponse(places))
}

// Create handles POST /api/places (multipart: image + title/description/address).
//
// @Summary      Create a place
// @Tags         places
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true  "Title"
// @Param        description  formData  string  true  "Description (min 5 chars)"
// @Param        address      formData  string  true  "Street address"
// @Param        image        formData  file    true  "Place image"
// @Success      201  {object}  placeEnvelope
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      422  {object}  messageResponse
// @Router       /api/places [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	req := createPlaceRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Address:     c.FormValue("address"),
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid inputs: "+err.Error())
	}

	imagePath, err := saveUpload(c, h.store)
	if err != nil {
		return err
	}

	place, err := h.service.CreatePlace(c.Request().Context(), ports.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Image:       imagePath,
		OwnerID:     userID,
	})
	if err != nil {
		// The request failed after the upload was stored; drop the file.
		_ = h.store.Remove(imagePath)
		return err
	}

	metrics.PlacesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, placeEnvelope{Place: toPlaceResponse(place)})
}

// Update handles PATCH /api/places/:placeId.
//
// @Summary      Update a place's title and description
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        placeId  path      string              true  "Place id"
// @Param        body     body      updatePlaceRequest  true  "Fields to update"
// @Success      200      {object}  placeEnvelope
// @Failure      401      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Failure      422      {object}  messageResponse
// @Router       /api/places/{placeId} [patch]
func (h *PlaceHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid inputs: "+err.Error())
	}

	place, err := h.service.UpdatePlace(c.Request().Context(), ports.UpdatePlaceInput{
		PlaceID:     c.Param("placeId"),
		RequesterID: userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, placeEnvelope{Place: toPlaceResponse(place)})
}

// Delete handles DELETE /api/places/:placeId.
//
// @Summary      Delete a place
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        placeId  path      string  true  "Place id"
// @Success      200      {object}  messageResponse
// @Failure      401      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Router       /api/places/{placeId} [delete]
func (h *PlaceHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeletePlace(c.Request().Context(), c.Param("placeId"), userID); err != nil {
		return err
	}

	metrics.PlacesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Deleted place."})
}
