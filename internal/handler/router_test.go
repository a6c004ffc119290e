package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"file-converter/internal/config"
)

func newTestContainer(t *testing.T) *config.Container {
	t.Helper()
	t.Setenv("STAGING_PATH", t.TempDir())
	t.Setenv("MEDIA_PATH", t.TempDir())
	t.Setenv("CHAT_DB_PATH", "")
	t.Setenv("GCP_PROJECT_ID", "")
	t.Setenv("SUPABASE_URL", "")

	container, err := config.NewContainer()
	if err != nil {
		t.Fatalf("failed to build container: %v", err)
	}
	t.Cleanup(func() { container.Close() })
	return container
}

func TestNewRouter_Health(t *testing.T) {
	router := NewRouter(newTestContainer(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_ChatDisabledWithoutProject(t *testing.T) {
	router := NewRouter(newTestContainer(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rr.Code)
	}
}

func TestNewRouter_ConvertBadRequest(t *testing.T) {
	router := NewRouter(newTestContainer(t))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/convert", strings.NewReader("not multipart"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	router := NewRouter(newTestContainer(t))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rr.Code)
	}
}
