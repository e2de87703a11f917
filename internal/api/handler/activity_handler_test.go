package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/service"
	"github.com/riderapp/admin-console/internal/infrastructure/memstore"
)

func TestActivityHandler_List_NewestFirst(t *testing.T) {
	directory := service.NewDirectoryService(
		memstore.NewDirectoryRepository(nil),
		memstore.NewSettingsRepository(domain.DefaultSettings()),
		memstore.NewActivityRepository(memstore.SeedActivity()),
		zerolog.Nop(),
	)
	h := NewActivityHandler(directory)
	c, rec := newJSONContext(t, http.MethodGet, "/v1/activity", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var entries []activityEntryResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &entries)
	if len(entries) != len(memstore.SeedActivity()) {
		t.Fatalf("expected %d entries, got %d", len(memstore.SeedActivity()), len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.After(entries[i-1].Timestamp) {
			t.Fatalf("entries not ordered newest first: %v before %v",
				entries[i-1].Timestamp, entries[i].Timestamp)
		}
	}
}

func TestRolesHandler_List(t *testing.T) {
	h := NewRolesHandler()
	c, rec := newJSONContext(t, http.MethodGet, "/v1/roles", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var perms []rolePermissionResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &perms)
	if len(perms) != 3 {
		t.Fatalf("expected 3 roles, got %d", len(perms))
	}
	want := map[string]bool{"Administrator": true, "Manager": true, "Staff": true}
	for _, p := range perms {
		if !want[p.Role] {
			t.Fatalf("unexpected role %q", p.Role)
		}
		if p.Description == "" {
			t.Fatalf("role %q has empty description", p.Role)
		}
	}
}
