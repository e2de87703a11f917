package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// RolesHandler serves the static role permission catalogue.
type RolesHandler struct{}

func NewRolesHandler() *RolesHandler {
	return &RolesHandler{}
}

// List returns the directory role catalogue with permission descriptions.
//
// @Summary      List directory roles and their permissions
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   rolePermissionResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/roles [get]
func (h *RolesHandler) List(c echo.Context) error {
	perms := domain.RolePermissions()

	out := make([]rolePermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, rolePermissionResponse{
			Role:        string(p.Role),
			Description: p.Description,
		})
	}
	return c.JSON(http.StatusOK, out)
}
