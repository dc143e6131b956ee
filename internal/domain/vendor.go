package domain

import (
	"context"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// KYCStatus is the identity verification state of a vendor.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCVerified KYCStatus = "VERIFIED"
	KYCRejected KYCStatus = "REJECTED"
)

// WorkingHour is one opening window of a vendor.
type WorkingHour struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ServiceLocation is an area a vendor serves.
type ServiceLocation struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Vendor is a service provider profile owned by a user.
type Vendor struct {
	BaseModel
	UserID           string            `gorm:"column:userId;size:36;index;not null" json:"userId"`
	BusinessName     string            `gorm:"column:businessName;size:150" json:"businessName"`
	KYCStatus        KYCStatus         `gorm:"column:kycStatus;size:16;index;default:PENDING" json:"kycStatus"`
	JobsDone         int               `gorm:"column:jobsDone;default:0" json:"jobsDone"`
	Rating           float64           `gorm:"column:rating;default:0" json:"rating"`
	WorkingHours     []WorkingHour     `gorm:"column:workingHours;type:text;serializer:json" json:"workingHours"`
	ServiceLocations []ServiceLocation `gorm:"column:serviceLocations;type:text;serializer:json" json:"serviceLocations"`
}

// TableName overrides the GORM table name.
func (Vendor) TableName() string { return CollectionVendors }

// Record returns the stored document form of v. Nested lists become
// []any of map[string]any so that every backend sees plain documents.
func (v Vendor) Record() query.Record {
	hours := make([]any, len(v.WorkingHours))
	for i, h := range v.WorkingHours {
		hours[i] = map[string]any{"day": h.Day, "start": h.Start, "end": h.End}
	}
	locations := make([]any, len(v.ServiceLocations))
	for i, l := range v.ServiceLocations {
		locations[i] = map[string]any{"city": l.City, "state": l.State, "pincode": l.Pincode}
	}

	r := v.BaseModel.record()
	r["userId"] = v.UserID
	r["businessName"] = v.BusinessName
	r["kycStatus"] = string(v.KYCStatus)
	r["jobsDone"] = v.JobsDone
	r["rating"] = v.Rating
	r["workingHours"] = hours
	r["serviceLocations"] = locations
	return r
}

// VendorFilter narrows a vendor listing. Zero fields place no constraint.
type VendorFilter struct {
	KYCStatus KYCStatus
	UserID    string
	MinJobs   *int
}

// VendorService defines the business logic interface for vendors.
type VendorService interface {
	ListVendors(ctx context.Context, params query.Params, filter VendorFilter) (*query.Page, error)
}
