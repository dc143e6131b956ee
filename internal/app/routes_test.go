package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// pingBackend wraps a memory backend with a configurable Ping.
type pingBackend struct {
	store.Backend
	ping func(ctx context.Context) error
}

func (b pingBackend) Ping(ctx context.Context) error { return b.ping(ctx) }

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return body
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		backend    store.Backend
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{"ok", store.NewMemory(), http.StatusOK, "ok", "ok"},
		{
			"ping fails",
			pingBackend{Backend: store.NewMemory(), ping: func(context.Context) error { return errors.New("connection refused") }},
			http.StatusServiceUnavailable, "degraded", "error",
		},
		{"no backend", nil, http.StatusServiceUnavailable, "degraded", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", healthHandler(tt.backend))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d; want %d", w.Code, tt.wantCode)
			}
			body := decodeHealth(t, w)
			if body["status"] != tt.wantStatus {
				t.Errorf("status = %v; want %q", body["status"], tt.wantStatus)
			}
			components, _ := body["components"].(map[string]any)
			if components["database"] != tt.wantDB {
				t.Errorf("components.database = %v; want %q", components["database"], tt.wantDB)
			}
		})
	}
}

func TestHealthHandler_ReportsDriver(t *testing.T) {
	r := gin.New()
	r.GET("/health", healthHandler(store.NewMemory()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := decodeHealth(t, w)["driver"]; got != "memory" {
		t.Errorf("driver = %v; want memory", got)
	}
}

func TestHealthHandler_BoundsPing(t *testing.T) {
	blocking := pingBackend{Backend: store.NewMemory(), ping: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}
	r := gin.New()
	r.GET("/health", healthHandler(blocking))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/health", nil).WithContext(ctx)

	start := time.Now()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d; want 503", w.Code)
	}
	if elapsed := time.Since(start); elapsed > healthPingTimeout {
		t.Errorf("health check took %v; want it bounded by the request context", elapsed)
	}
}

type mockModule struct {
	called bool
}

func (m *mockModule) RegisterRoutes(api *gin.RouterGroup) {
	m.called = true
	api.GET("/mock", func(c *gin.Context) { c.Status(http.StatusOK) })
}

func TestRegisterRoutes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		router *gin.Engine
		deps   *RouteDeps
	}{
		{"nil router", nil, &RouteDeps{Modules: []Module{&mockModule{}}}},
		{"nil deps", gin.New(), nil},
		{"no modules", gin.New(), &RouteDeps{}},
		{"nil module entry", gin.New(), &RouteDeps{Modules: []Module{&mockModule{}, nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RegisterRoutes(tt.router, tt.deps); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRegisterRoutes_MountsModulesUnderAPI(t *testing.T) {
	r := gin.New()
	m := &mockModule{}
	if err := RegisterRoutes(r, &RouteDeps{Modules: []Module{m}, Backend: store.NewMemory()}); err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}
	if !m.called {
		t.Fatal("module RegisterRoutes was not called")
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/mock", http.StatusOK},
		{http.MethodGet, "/mock", http.StatusNotFound},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodPost, "/api/v1/mock", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("status = %d; want %d", w.Code, tt.want)
			}
		})
	}
}
