package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/riderapp/admin-console/internal/core/service"
	"github.com/riderapp/admin-console/internal/infrastructure/memstore"
)

func newTestAuthHandler() (*AuthHandler, *memstore.TokenRevoker) {
	revoker := memstore.NewTokenRevoker()
	sessions := service.NewSessionService(
		memstore.NewCredentialStore(memstore.SeedCredentials()),
		revoker,
		"secret",
		time.Hour,
		zerolog.Nop(),
	)
	return NewAuthHandler(sessions), revoker
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login", `{"email":"admin@riderapp.com","password":"admin123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected token in response")
	}
	if resp.Identity.ID != "1" || resp.Identity.Role != "admin" || resp.Identity.Name != "Admin User" {
		t.Fatalf("unexpected identity: %+v", resp.Identity)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login", `{"email":"nobody@x.com","password":"wrong"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Error != "invalid email or password" {
		t.Fatalf("expected generic error message, got %q", resp.Error)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/login", `{"email":"admin@riderapp.com"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_DemoLogin(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/demo-login", "")

	if err := h.DemoLogin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Identity.Email != "admin@riderapp.com" || resp.Identity.Role != "admin" {
		t.Fatalf("demo login must sign in the seed admin, got %+v", resp.Identity)
	}
}

func TestAuthHandler_Logout_RevokesToken(t *testing.T) {
	h, revoker := newTestAuthHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/auth/logout", "")
	c.Set("token_id", "tok-1")
	c.Set("token_ttl", time.Minute)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	revoked, err := revoker.IsRevoked(c.Request().Context(), "tok-1")
	if err != nil || !revoked {
		t.Fatalf("expected token to be revoked, got revoked=%v err=%v", revoked, err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, rec := newJSONContext(t, http.MethodGet, "/v1/auth/me", "")
	c.Set("identity_id", "2")
	c.Set("name", "Ahmed Hassan")
	c.Set("email", "ahmed@riderapp.com")
	c.Set("role", "user")
	c.Set("employee_id", "EMP001")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp identityResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != "2" || resp.EmployeeID != "EMP001" || resp.Role != "user" {
		t.Fatalf("unexpected identity: %+v", resp)
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h, _ := newTestAuthHandler()
	c, _ := newJSONContext(t, http.MethodGet, "/v1/auth/me", "")

	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
