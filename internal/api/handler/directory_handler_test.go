package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/service"
	"github.com/riderapp/admin-console/internal/infrastructure/memstore"
)

func newTestDirectoryHandler() (*DirectoryHandler, *service.DirectoryService) {
	directory := service.NewDirectoryService(
		memstore.NewDirectoryRepository(memstore.SeedAccounts()),
		memstore.NewSettingsRepository(domain.DefaultSettings()),
		memstore.NewActivityRepository(nil),
		zerolog.Nop(),
	)
	return NewDirectoryHandler(directory), directory
}

func setAdminClaims(c echo.Context) {
	c.Set("identity_id", "1")
	c.Set("name", "Admin User")
	c.Set("email", "admin@riderapp.com")
	c.Set("role", "admin")
}

func TestDirectoryHandler_List(t *testing.T) {
	h, _ := newTestDirectoryHandler()
	c, rec := newJSONContext(t, http.MethodGet, "/v1/users", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listUsersResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != len(memstore.SeedAccounts()) {
		t.Fatalf("expected %d accounts, got %d", len(memstore.SeedAccounts()), resp.Total)
	}
	if resp.Items[0].ID != "U-1001" {
		t.Fatalf("expected insertion order, got %+v", resp.Items)
	}
}

func TestDirectoryHandler_Create(t *testing.T) {
	h, directory := newTestDirectoryHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/users", `{"name":"Ali Rahman","email":"ali@riderapp.com","role":"Manager"}`)
	setAdminClaims(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp accountResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Status != "active" || resp.Role != "Manager" {
		t.Fatalf("unexpected account: %+v", resp)
	}

	accounts, _ := directory.ListUsers(c.Request().Context())
	if len(accounts) != len(memstore.SeedAccounts())+1 {
		t.Fatalf("expected directory to grow by one")
	}
	if accounts[len(accounts)-1].ID != resp.ID {
		t.Fatalf("new account must be appended at the end")
	}

	// The mutation lands in the audit log.
	entries, _ := directory.ListActivity(c.Request().Context())
	if len(entries) != 1 || entries[0].Actor != "Admin User" {
		t.Fatalf("expected audit entry by Admin User, got %+v", entries)
	}
}

func TestDirectoryHandler_Create_MissingField(t *testing.T) {
	h, directory := newTestDirectoryHandler()
	c, rec := newJSONContext(t, http.MethodPost, "/v1/users", `{"name":"","email":"x@x.com","role":"Staff"}`)
	setAdminClaims(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	accounts, _ := directory.ListUsers(c.Request().Context())
	if len(accounts) != len(memstore.SeedAccounts()) {
		t.Fatalf("failed create must not mutate the directory")
	}
}

func TestDirectoryHandler_Delete(t *testing.T) {
	h, directory := newTestDirectoryHandler()
	c, rec := newJSONContext(t, http.MethodDelete, "/v1/users/U-1003", "")
	c.SetParamNames("id")
	c.SetParamValues("U-1003")
	setAdminClaims(c)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	accounts, _ := directory.ListUsers(c.Request().Context())
	for _, account := range accounts {
		if account.ID == "U-1003" {
			t.Fatalf("account still present after delete")
		}
	}
}

func TestDirectoryHandler_Delete_Missing(t *testing.T) {
	h, directory := newTestDirectoryHandler()
	c, rec := newJSONContext(t, http.MethodDelete, "/v1/users/U-does-not-exist", "")
	c.SetParamNames("id")
	c.SetParamValues("U-does-not-exist")
	setAdminClaims(c)

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	accounts, _ := directory.ListUsers(c.Request().Context())
	if len(accounts) != len(memstore.SeedAccounts()) {
		t.Fatalf("delete of absent id must not mutate the directory")
	}
}
