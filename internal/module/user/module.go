package user

import "github.com/gin-gonic/gin"

// UserModule implements the app.Module interface for the user domain.
type UserModule struct {
	handler *UserHandler
}

// NewModule creates a new UserModule with the given handler.
// Panics if h is nil.
func NewModule(h *UserHandler) *UserModule {
	if h == nil {
		panic("user.NewModule: handler must not be nil")
	}
	return &UserModule{handler: h}
}

// RegisterRoutes registers the user API routes. Static segments are
// registered before /users/:id so they are never read as an id.
func (m *UserModule) RegisterRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.GET("", m.handler.List)
	users.GET("/stats", m.handler.Stats)
	users.GET("/role/:role", m.handler.ListByRole)
	users.GET("/status/:status", m.handler.ListByStatus)
	users.GET("/:id", m.handler.Get)
}
