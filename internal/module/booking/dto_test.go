package booking

import (
	"testing"
	"time"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
)

func TestListBookingsQuery_Filter(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		q        ListBookingsQuery
		wantFrom *time.Time
		wantTo   *time.Time
		wantErr  bool
	}{
		{name: "no dates", q: ListBookingsQuery{UserID: "u1"}},
		{name: "date only start", q: ListBookingsQuery{StartDate: "2025-06-01"}, wantFrom: &day},
		{
			name:   "date only end covers the day",
			q:      ListBookingsQuery{EndDate: "2025-06-01"},
			wantTo: ptr(day.Add(24*time.Hour - time.Nanosecond)),
		},
		{
			name:     "rfc3339 kept exact",
			q:        ListBookingsQuery{StartDate: "2025-06-01T10:30:00+05:30", EndDate: "2025-06-01T18:00:00Z"},
			wantFrom: ptr(time.Date(2025, 6, 1, 5, 0, 0, 0, time.UTC)),
			wantTo:   ptr(time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)),
		},
		{name: "same day range", q: ListBookingsQuery{StartDate: "2025-06-01", EndDate: "2025-06-01"}, wantFrom: &day, wantTo: ptr(day.Add(24*time.Hour - time.Nanosecond))},
		{name: "bad start", q: ListBookingsQuery{StartDate: "01/06/2025"}, wantErr: true},
		{name: "bad end", q: ListBookingsQuery{EndDate: "tomorrow"}, wantErr: true},
		{name: "end before start", q: ListBookingsQuery{StartDate: "2025-06-02", EndDate: "2025-06-01"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.q.Filter()
			if tt.wantErr {
				if !domain.IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !sameTime(f.From, tt.wantFrom) {
				t.Errorf("From = %v; want %v", f.From, tt.wantFrom)
			}
			if !sameTime(f.To, tt.wantTo) {
				t.Errorf("To = %v; want %v", f.To, tt.wantTo)
			}
		})
	}
}

func TestListBookingsQuery_FilterMapsUserID(t *testing.T) {
	f, err := ListBookingsQuery{UserID: "u7", VendorID: "v2", ServiceID: "s3", Status: "PENDING"}.Filter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.BookingFilter{CustomerID: "u7", VendorID: "v2", ServiceID: "s3", Status: domain.BookingPending}
	if f != want {
		t.Errorf("Filter() = %+v; want %+v", f, want)
	}
}

func ptr(t time.Time) *time.Time { return &t }

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
