package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yourplaces/places-api/internal/core/ports"
)

// saveUpload stores the request's "image" multipart part and returns the
// stored path. A missing file part is a validation failure, not a server
// error.
func saveUpload(c echo.Context, store ports.FileStore) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid inputs: image file is required")
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	return store.Save(src, fh.Filename)
}
