package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riderapp/admin-console/internal/api/metrics"
	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
)

// Fixed pair the demo login submits, matching the first seed credential.
const (
	demoEmail    = "admin@riderapp.com"
	demoPassword = "admin123"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login authenticates against the credential store and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return h.login(c, req.Email, req.Password)
}

// DemoLogin logs in with the fixed demo credential pair. It exists so the
// demo console can sign in with a single click; it goes through the same
// session contract as Login.
//
// @Summary      Demo login with the fixed seed credentials
// @Tags         auth
// @Produce      json
// @Success      200  {object}  loginResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/demo-login [post]
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	return h.login(c, demoEmail, demoPassword)
}

func (h *AuthHandler) login(c echo.Context, email, password string) error {
	result, err := h.sessions.Login(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			// One message for every mismatch; never hint at which part was wrong.
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid email or password"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:    result.Token,
		Identity: toIdentityResponse(result.Identity),
	})
}

// Logout clears the session and revokes the presented token.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	tokenID, ttl := ctxToken(c)

	if err := h.sessions.Logout(c.Request().Context(), tokenID, ttl); err != nil {
		return err
	}
	if tokenID != "" {
		metrics.TokenRevocationsTotal.Inc()
	}

	return c.NoContent(http.StatusNoContent)
}

// Me returns the identity of the presented token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIdentityResponse(identity))
}
