package domain

import (
	"context"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// ServiceStatus tells whether a catalog entry can be booked.
type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "ACTIVE"
	ServiceInactive ServiceStatus = "INACTIVE"
)

// Service is a bookable catalog entry offered by a vendor.
type Service struct {
	BaseModel
	VendorID    string        `gorm:"column:vendorId;size:36;index;not null" json:"vendorId"`
	CategoryID  string        `gorm:"column:categoryId;size:36;index;not null" json:"categoryId"`
	Name        string        `gorm:"column:name;size:150;not null" json:"name"`
	Description string        `gorm:"column:description;type:text" json:"description,omitempty"`
	BasePrice   float64       `gorm:"column:basePrice;not null" json:"basePrice"`
	Status      ServiceStatus `gorm:"column:status;size:16;index;default:ACTIVE" json:"status"`
}

// TableName overrides the GORM table name.
func (Service) TableName() string { return CollectionServices }

// Record returns the stored document form of s.
func (s Service) Record() query.Record {
	r := s.BaseModel.record()
	r["vendorId"] = s.VendorID
	r["categoryId"] = s.CategoryID
	r["name"] = s.Name
	r["description"] = s.Description
	r["basePrice"] = s.BasePrice
	r["status"] = string(s.Status)
	return r
}

// ServiceFilter narrows a catalog listing. Zero fields place no constraint.
type ServiceFilter struct {
	CategoryID string
	VendorID   string
	Status     ServiceStatus
	MinPrice   *float64
	MaxPrice   *float64
}

// CatalogService defines the business logic interface for the service catalog.
type CatalogService interface {
	ListServices(ctx context.Context, params query.Params, filter ServiceFilter) (*query.Page, error)
}
