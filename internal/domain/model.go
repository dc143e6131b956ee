package domain

import (
	"time"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// Collection names. SQL backends use them as table names.
const (
	CollectionUsers    = "users"
	CollectionVendors  = "vendors"
	CollectionServices = "services"
	CollectionBookings = "bookings"
)

// BaseModel is the common base struct for all stored documents.
// Column names match document field names, so filters and sorts address SQL
// columns and MongoDB fields alike.
type BaseModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"column:createdAt;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (m BaseModel) record() query.Record {
	return query.Record{
		"id":        m.ID,
		"createdAt": m.CreatedAt,
		"updatedAt": m.UpdatedAt,
	}
}

// Models returns the GORM models migrated by SQL backends.
func Models() []any {
	return []any{&User{}, &Vendor{}, &Service{}, &Booking{}}
}

// JSONColumns lists, per table, the columns that hold nested documents.
func JSONColumns() map[string][]string {
	return map[string][]string{
		CollectionVendors:  {"workingHours", "serviceLocations"},
		CollectionBookings: {"addressSnapshot"},
	}
}
