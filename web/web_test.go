package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestIndexWithToken(t *testing.T) {
	h, err := NewHandler("pk.test-token")
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "pk.test-token") {
		t.Error("page does not embed the configured token")
	}
	for _, control := range []string{"min-units", "max-units", "zipcode", "vacancy", "types"} {
		if !strings.Contains(body, `id="`+control+`"`) {
			t.Errorf("page is missing the %s control", control)
		}
	}
}

func TestIndexWithoutToken(t *testing.T) {
	h, err := NewHandler("")
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !strings.Contains(rec.Body.String(), "openstreetmap.org") {
		t.Error("page has no OpenStreetMap fallback tile source")
	}
}
