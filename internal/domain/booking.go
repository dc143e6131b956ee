package domain

import (
	"context"
	"time"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Address is the service address copied onto a booking when it is made.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Booking is a customer's reservation of a vendor service.
type Booking struct {
	BaseModel
	CustomerID      string        `gorm:"column:customerId;size:36;index;not null" json:"customerId"`
	VendorID        string        `gorm:"column:vendorId;size:36;index;not null" json:"vendorId"`
	ServiceID       string        `gorm:"column:serviceId;size:36;index;not null" json:"serviceId"`
	AddressSnapshot Address       `gorm:"column:addressSnapshot;type:text;serializer:json" json:"addressSnapshot"`
	ScheduledDate   time.Time     `gorm:"column:scheduledDate;index;not null" json:"scheduledDate"`
	Status          BookingStatus `gorm:"column:status;size:16;index;default:PENDING" json:"status"`
	TotalAmount     float64       `gorm:"column:totalAmount;not null" json:"totalAmount"`
}

// TableName overrides the GORM table name.
func (Booking) TableName() string { return CollectionBookings }

// Record returns the stored document form of b.
func (b Booking) Record() query.Record {
	r := b.BaseModel.record()
	r["customerId"] = b.CustomerID
	r["vendorId"] = b.VendorID
	r["serviceId"] = b.ServiceID
	r["addressSnapshot"] = map[string]any{
		"line1":   b.AddressSnapshot.Line1,
		"line2":   b.AddressSnapshot.Line2,
		"city":    b.AddressSnapshot.City,
		"state":   b.AddressSnapshot.State,
		"pincode": b.AddressSnapshot.Pincode,
	}
	r["scheduledDate"] = b.ScheduledDate
	r["status"] = string(b.Status)
	r["totalAmount"] = b.TotalAmount
	return r
}

// BookingFilter narrows a booking listing. Zero fields place no constraint.
// To is inclusive.
type BookingFilter struct {
	CustomerID string
	VendorID   string
	ServiceID  string
	Status     BookingStatus
	From       *time.Time
	To         *time.Time
}

// BookingService defines the business logic interface for bookings.
type BookingService interface {
	ListBookings(ctx context.Context, params query.Params, filter BookingFilter) (*query.Page, error)
}
