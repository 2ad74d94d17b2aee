package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the authenticated principal injected by the Auth
// middleware. A missing id means the middleware did not run or the token
// carried no subject; either way the request is unauthenticated.
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get("userID").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
