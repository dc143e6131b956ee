package catalog

import "github.com/mariyaselvam/service-booking-BE/internal/domain"

// ListServicesQuery holds the resource filters accepted by GET /api/v1/services.
type ListServicesQuery struct {
	Category string   `form:"category" binding:"omitempty,max=64"`
	VendorID string   `form:"vendorId" binding:"omitempty,max=64"`
	Status   string   `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
	MinPrice *float64 `form:"minPrice" binding:"omitempty,min=0"`
	MaxPrice *float64 `form:"maxPrice" binding:"omitempty,min=0"`
}

// Filter converts q into a domain filter.
func (q ListServicesQuery) Filter() domain.ServiceFilter {
	return domain.ServiceFilter{
		CategoryID: q.Category,
		VendorID:   q.VendorID,
		Status:     domain.ServiceStatus(q.Status),
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
	}
}
