package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

const healthPingTimeout = time.Second

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	Backend store.Backend
}

// RegisterRoutes registers the health check, every module under /api/v1 and
// the JSON 404 fallback.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps.Backend))

	api := r.Group("/api/v1")
	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(noRouteHandler())
	r.NoMethod(noMethodHandler())
	return nil
}

// healthHandler pings the active backend and reports its status.
func healthHandler(backend store.Backend) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, dbStatus, code := "ok", "ok", http.StatusOK

		if backend == nil {
			status, dbStatus, code = "degraded", "error", http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			defer cancel()
			if err := backend.Ping(ctx); err != nil {
				status, dbStatus, code = "degraded", "error", http.StatusServiceUnavailable
			}
		}

		body := gin.H{
			"status": status,
			"components": gin.H{
				"database": dbStatus,
			},
		}
		if backend != nil {
			body["driver"] = backend.Driver()
		}
		c.JSON(code, body)
	}
}
