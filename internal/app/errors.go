package app

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/pkg"
)

// noRouteHandler answers unknown paths with the JSON error envelope.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderError(c, http.StatusNotFound, "not found")
	}
}

// noMethodHandler answers known paths hit with an unsupported method.
func noMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		renderError(c, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func renderError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, pkg.Response{Code: code, Message: message})
}
