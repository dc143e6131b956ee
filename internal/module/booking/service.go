package booking

import (
	"context"
	"log/slog"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

// bookingService implements domain.BookingService with the query builder.
type bookingService struct {
	bookings query.Store
	logger   *slog.Logger
}

// NewBookingService creates a new BookingService reading from bookings.
func NewBookingService(bookings query.Store, logger *slog.Logger) domain.BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingService{bookings: bookings, logger: logger}
}

// ListBookings returns a page of bookings narrowed by filter. Bookings have
// no free-text fields, so the search parameter is ignored.
func (s *bookingService) ListBookings(ctx context.Context, params query.Params, filter domain.BookingFilter) (*query.Page, error) {
	b := query.From(s.bookings, params)
	for _, eq := range []struct{ field, value string }{
		{"customerId", filter.CustomerID},
		{"vendorId", filter.VendorID},
		{"serviceId", filter.ServiceID},
		{"status", string(filter.Status)},
	} {
		if eq.value != "" {
			b = b.Filter(query.Eq(eq.field, eq.value))
		}
	}
	if filter.From != nil {
		b = b.Filter(query.Gte("scheduledDate", *filter.From))
	}
	if filter.To != nil {
		b = b.Filter(query.Lte("scheduledDate", *filter.To))
	}

	page, err := b.Sort().Select(query.Exclude("__v")).Paginate().Execute(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "booking store error",
			slog.String("collection", domain.CollectionBookings),
			slog.Any("error", err),
		)
		return nil, store.MapError(err)
	}
	return page, nil
}
