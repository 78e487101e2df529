package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"safety-backend/internal/shared/config"
	"safety-backend/internal/shared/metrics"
	"safety-backend/internal/shared/telemetry"
	"safety-backend/internal/status"
)

const wantStatusBody = `{"status":"running","message":"Backend is active"}`

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	var logs bytes.Buffer
	prev := telemetry.SetOutput(&logs)
	t.Cleanup(func() { telemetry.SetOutput(prev) })

	return NewRouter(RouterDeps{
		Config:        cfg,
		StatusHandler: status.NewHandler(status.NewService()),
		Metrics:       metrics.New(),
	})
}

func TestRouterServesStatus(t *testing.T) {
	router := newTestRouter(t, config.Config{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != wantStatusBody {
		t.Fatalf("expected body %s, got %s", wantStatusBody, got)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}

func TestRouterUnknownPathIsNotFound(t *testing.T) {
	router := newTestRouter(t, config.Config{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestRouterUnsupportedMethodIsNotAllowed(t *testing.T) {
	router := newTestRouter(t, config.Config{})

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(method, "/api/status", nil))

		if resp.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405, got %d", method, resp.Code)
		}
	}
}

func TestRouterMetricsDisabledByDefault(t *testing.T) {
	router := newTestRouter(t, config.Config{})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for /metrics when disabled, got %d", resp.Code)
	}
}

func TestRouterMetricsEnabled(t *testing.T) {
	router := newTestRouter(t, config.Config{MetricsEnabled: true})

	statusResp := httptest.NewRecorder()
	router.ServeHTTP(statusResp, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	want := `http_requests_total{method="GET",route="/api/status",status="200"} 1`
	if !strings.Contains(resp.Body.String(), want) {
		t.Fatalf("expected %q in metrics output", want)
	}
}

func TestAddr(t *testing.T) {
	cases := []struct {
		host, port, want string
	}{
		{"", "", ":8080"},
		{"", "9000", ":9000"},
		{"", ":9001", ":9001"},
		{"127.0.0.1", "8081", "127.0.0.1:8081"},
		{" localhost ", "", "localhost:8080"},
		{"::1", "8082", "[::1]:8082"},
	}
	for _, tc := range cases {
		if got := Addr(tc.host, tc.port); got != tc.want {
			t.Fatalf("Addr(%q, %q) = %q, want %q", tc.host, tc.port, got, tc.want)
		}
	}
}
