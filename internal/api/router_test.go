package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/versified/bondsapi/internal/domain/dto"
	"github.com/versified/bondsapi/internal/domain/models"
)

func TestNewRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &mockBondService{
		search:  &dto.SearchResponse{Items: []map[string]any{}},
		curve:   &dto.CurveResponse{LatestDate: "2026-07-31"},
		volumes: &dto.VolumesResponse{Items: map[string]models.VolumeInfo{}},
		details: &dto.DetailsResponse{ValorID: "1"},
	}
	r := NewRouter(NewHandler(svc), "http://localhost:5173")

	paths := []string{
		"/api/health",
		"/api/bonds/search",
		"/api/bonds/volumes",
		"/api/bonds/1",
		"/api/snb/curve",
	}
	for _, path := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200 (body: %s)", path, w.Code, w.Body.String())
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("%s CORS origin = %q", path, got)
		}
		if w.Header().Get("X-Request-ID") == "" {
			t.Errorf("%s missing request id header", path)
		}
	}
}

func TestNewRouterUnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockBondService{}), "*")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
