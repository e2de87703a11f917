package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/api/metrics"
	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
)

// DirectoryHandler handles user account management.
type DirectoryHandler struct {
	directory ports.DirectoryService
}

func NewDirectoryHandler(directory ports.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// List returns all user accounts in insertion order.
//
// @Summary      List user accounts
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users [get]
func (h *DirectoryHandler) List(c echo.Context) error {
	accounts, err := h.directory.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, toAccountResponse(a))
	}

	return c.JSON(http.StatusOK, listUsersResponse{Items: items, Total: len(items)})
}

// Create adds a new user account.
//
// @Summary      Create a user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addUserRequest  true  "Account details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/users [post]
func (h *DirectoryHandler) Create(c echo.Context) error {
	var req addUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.directory.AddUser(c.Request().Context(), ports.AddUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.AccountRole(req.Role),
		Actor: identity.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingField) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(account.Role)).Inc()

	return c.JSON(http.StatusCreated, toAccountResponse(*account))
}

// Delete removes a user account by id. An unknown id is a directory no-op,
// surfaced over HTTP as 404.
//
// @Summary      Delete a user account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id (e.g. U-1A2B3C4D)"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *DirectoryHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	removed, err := h.directory.DeleteUser(c.Request().Context(), c.Param("id"), identity.Name)
	if err != nil {
		return err
	}
	if !removed {
		metrics.AccountsDeletedTotal.WithLabelValues("missing").Inc()
		return c.JSON(http.StatusNotFound, errorResponse{Error: "user account not found"})
	}

	metrics.AccountsDeletedTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}
