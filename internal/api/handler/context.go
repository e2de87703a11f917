package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// ctxIdentity rebuilds the authenticated identity from the claims injected by
// the Auth middleware. An empty role proves the middleware did not run (or
// the token carried no usable claims); fail fast with 401 before any service
// call.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("identity_id").(string)
	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	employeeID, _ := c.Get("employee_id").(string)

	return domain.Identity{
		ID:         id,
		Name:       name,
		Email:      email,
		Role:       domain.SessionRole(role),
		EmployeeID: employeeID,
	}, nil
}

// ctxToken returns the bearer token id and its remaining lifetime, both zero
// valued when the middleware could not establish them.
func ctxToken(c echo.Context) (string, time.Duration) {
	tokenID, _ := c.Get("token_id").(string)
	ttl, _ := c.Get("token_ttl").(time.Duration)
	return tokenID, ttl
}
