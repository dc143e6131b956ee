package catalog

import (
	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/pkg"
)

// CatalogHandler handles REST API requests for the service catalog.
type CatalogHandler struct {
	svc domain.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler with the given service.
func NewCatalogHandler(svc domain.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// List handles GET /api/v1/services.
func (h *CatalogHandler) List(c *gin.Context) {
	var q ListServicesQuery
	if !pkg.BindQuery(c, &q) {
		return
	}

	page, err := h.svc.ListServices(c.Request.Context(), pkg.ParseListParams(c), q.Filter())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}
