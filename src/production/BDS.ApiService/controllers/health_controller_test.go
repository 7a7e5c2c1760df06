package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/faryal1907/bio-d-scan/src/production/BDS.ApiService/health"
	logger "github.com/faryal1907/bio-d-scan/src/production/BDS.Logger"
)

func newHealthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// nil client: the store is unreachable in unit tests
	ctrl := NewHealthController(health.NewHealthChecker(nil), logger.GetGlobalLogger())
	ctrl.RegisterRoutes(router)
	return router
}

func TestRoot(t *testing.T) {
	router := newHealthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Bio D Scan API is running!") {
		t.Errorf("body = %s; want the API banner", rec.Body.String())
	}
}

func TestHealthLive(t *testing.T) {
	router := newHealthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body = %s; want healthy", rec.Body.String())
	}
}

func TestHealthReadyWithoutStore(t *testing.T) {
	router := newHealthRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d; want %d when the store is unreachable", rec.Code, http.StatusServiceUnavailable)
	}
	if !strings.Contains(rec.Body.String(), "degraded") {
		t.Errorf("body = %s; want degraded status", rec.Body.String())
	}
}
