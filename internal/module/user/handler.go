package user

import (
	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/pkg"
)

// UserHandler handles REST API requests for the user resource.
type UserHandler struct {
	svc domain.UserService
}

// NewUserHandler creates a new UserHandler with the given service.
func NewUserHandler(svc domain.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c *gin.Context) {
	var q ListUsersQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListUsers(c.Request.Context(), pkg.ParseListParams(c), q.Filter())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}

// ListByRole handles GET /api/v1/users/role/:role.
func (h *UserHandler) ListByRole(c *gin.Context) {
	page, err := h.svc.ListByRole(c.Request.Context(), domain.UserRole(c.Param("role")), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}

// ListByStatus handles GET /api/v1/users/status/:status.
func (h *UserHandler) ListByStatus(c *gin.Context) {
	page, err := h.svc.ListByStatus(c.Request.Context(), domain.UserStatus(c.Param("status")), pkg.ParseListParams(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}

// Stats handles GET /api/v1/users/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, stats)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, user)
}
