package booking

import (
	"time"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
)

const dateLayout = "2006-01-02"

// ListBookingsQuery holds the resource filters accepted by GET /api/v1/bookings.
// Dates are YYYY-MM-DD or RFC 3339; a date-only endDate covers the whole day.
type ListBookingsQuery struct {
	UserID    string `form:"userId" binding:"omitempty,max=64"`
	VendorID  string `form:"vendorId" binding:"omitempty,max=64"`
	ServiceID string `form:"serviceId" binding:"omitempty,max=64"`
	Status    string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELLED"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// Filter converts q into a domain filter. It fails with a validation error
// for unparseable dates or a range that ends before it starts.
func (q ListBookingsQuery) Filter() (domain.BookingFilter, error) {
	f := domain.BookingFilter{
		CustomerID: q.UserID,
		VendorID:   q.VendorID,
		ServiceID:  q.ServiceID,
		Status:     domain.BookingStatus(q.Status),
	}

	if q.StartDate != "" {
		from, _, err := parseDate(q.StartDate)
		if err != nil {
			return f, domain.Invalid("startDate must be YYYY-MM-DD or RFC 3339", err)
		}
		f.From = &from
	}
	if q.EndDate != "" {
		to, dateOnly, err := parseDate(q.EndDate)
		if err != nil {
			return f, domain.Invalid("endDate must be YYYY-MM-DD or RFC 3339", err)
		}
		if dateOnly {
			to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, domain.Invalid("endDate must not be before startDate", nil)
	}
	return f, nil
}

// parseDate accepts a calendar date (UTC midnight) or an RFC 3339 timestamp.
func parseDate(s string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(dateLayout, s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t.UTC(), false, err
}
