package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/api/metrics"
	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
)

// SettingsHandler handles the singleton system settings record.
type SettingsHandler struct {
	directory ports.DirectoryService
}

func NewSettingsHandler(directory ports.DirectoryService) *SettingsHandler {
	return &SettingsHandler{directory: directory}
}

// Get returns the full settings record.
//
// @Summary      Get system settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  settingsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.directory.GetSettings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// Update merges a partial update into the settings record and returns the
// full result. Fields absent from the payload are left unchanged.
//
// @Summary      Update system settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateSettingsRequest  true  "Partial settings update"
// @Success      200   {object}  settingsResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/settings [patch]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
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

	settings, err := h.directory.UpdateSettings(c.Request().Context(), ports.UpdateSettingsInput{
		CompanyName:         req.CompanyName,
		TrainingFee:         req.TrainingFee,
		CutoffDate:          req.CutoffDate,
		EmailNotifications:  req.EmailNotifications,
		AutoGenerateReports: req.AutoGenerateReports,
		Actor:               identity.Name,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCutoffDate) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SettingsUpdatesTotal.Inc()

	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}
