package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the authenticated email injected by the Auth middleware,
// so privileged mutations can be attributed in the logs. The role check
// itself belongs to the RBAC middleware; an empty email here means the
// middleware did not run on this route.
func ctxActor(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
