package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/pkg"
)

// BookingHandler handles REST API requests for the booking resource.
type BookingHandler struct {
	svc domain.BookingService
}

// NewBookingHandler creates a new BookingHandler with the given service.
func NewBookingHandler(svc domain.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// List handles GET /api/v1/bookings.
func (h *BookingHandler) List(c *gin.Context) {
	var q ListBookingsQuery
	if !pkg.BindQuery(c, &q) {
		return
	}
	filter, err := q.Filter()
	if err != nil {
		pkg.Error(c, err)
		return
	}

	page, err := h.svc.ListBookings(c.Request.Context(), pkg.ParseListParams(c), filter)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, page)
}
