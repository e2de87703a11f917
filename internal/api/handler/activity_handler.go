package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/core/ports"
)

// ActivityHandler serves the read-only audit log.
type ActivityHandler struct {
	directory ports.DirectoryService
}

func NewActivityHandler(directory ports.DirectoryService) *ActivityHandler {
	return &ActivityHandler{directory: directory}
}

// List returns audit entries, newest first.
//
// @Summary      List activity log entries
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   activityEntryResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/activity [get]
func (h *ActivityHandler) List(c echo.Context) error {
	entries, err := h.directory.ListActivity(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]activityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, activityEntryResponse{
			Actor:     e.Actor,
			Action:    e.Action,
			Timestamp: e.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, out)
}
