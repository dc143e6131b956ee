// Package seed loads a deterministic demo marketplace into an empty backend.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

// DemoPassword is the password of every seeded account.
const DemoPassword = "password123"

// Sizes of the seeded collections.
const (
	Customers = 24
	Vendors   = 6
	Services  = 18
	Bookings  = 40
)

// epoch anchors every seeded timestamp so runs are reproducible.
var epoch = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

var namespace = uuid.MustParse("6f1c1c3e-8f0a-4a53-9c55-2f8f4c1f7a10")

var (
	firstNames = []string{"Aarav", "Diya", "Ishaan", "Meera", "Kabir", "Anaya", "Rohan", "Sara"}
	lastNames  = []string{"Sharma", "Iyer", "Khan", "Menon", "Das", "Reddy"}
	cities     = []domain.ServiceLocation{
		{City: "Chennai", State: "TN", Pincode: "600001"},
		{City: "Bengaluru", State: "KA", Pincode: "560001"},
		{City: "Pune", State: "MH", Pincode: "411001"},
	}
	businesses = []string{"Sparkle Home Services", "FixIt Plumbing", "Volt Electricals", "FreshCoat Painters", "CoolAir AC Care", "GreenLeaf Gardening"}
	categories = []string{"cleaning", "plumbing", "electrical", "painting", "appliance", "gardening"}
	offerings  = []struct{ name, description string }{
		{"Deep Cleaning", "Full home deep cleaning"},
		{"Pipe Repair", "Leak detection and pipe repair"},
		{"Wiring Check", "Safety inspection of home wiring"},
		{"Wall Painting", "Interior wall painting per room"},
		{"AC Service", "Split AC cleaning and gas top-up"},
		{"Lawn Care", "Mowing, trimming and weeding"},
	}
	bookingStatuses = []domain.BookingStatus{
		domain.BookingPending, domain.BookingConfirmed, domain.BookingCompleted, domain.BookingCancelled,
	}
)

// ID returns the deterministic id of the n-th seeded document of kind.
func ID(kind string, n int) string {
	return uuid.NewSHA1(namespace, fmt.Appendf(nil, "%s/%d", kind, n)).String()
}

// Run inserts the demo data unless the user collection already has
// documents. It reports whether anything was inserted.
func Run(ctx context.Context, backend store.Backend, logger *slog.Logger) (bool, error) {
	if backend == nil {
		return false, errors.New("seed: backend is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	users := backend.Collection(domain.CollectionUsers)
	n, err := users.Count(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed: count users: %w", err)
	}
	if n > 0 {
		logger.Info("seed skipped, users already present", slog.Int64("users", n))
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("seed: hash password: %w", err)
	}

	sets := []struct {
		collection string
		records    []query.Record
	}{
		{domain.CollectionUsers, demoUsers(string(hash))},
		{domain.CollectionVendors, demoVendors()},
		{domain.CollectionServices, demoServices()},
		{domain.CollectionBookings, demoBookings()},
	}
	for _, set := range sets {
		if err := backend.Collection(set.collection).Insert(ctx, set.records...); err != nil {
			return false, fmt.Errorf("seed: insert %s: %w", set.collection, err)
		}
		logger.Info("seeded collection",
			slog.String("collection", set.collection),
			slog.Int("documents", len(set.records)),
		)
	}
	return true, nil
}

func at(hours int) time.Time {
	return epoch.Add(time.Duration(hours) * time.Hour)
}

// demoUsers returns one admin, the vendor owners and the customers.
func demoUsers(hash string) []query.Record {
	records := make([]query.Record, 0, 1+Vendors+Customers)
	add := func(id string, role domain.UserRole, name, email string, i int) {
		u := domain.User{
			BaseModel:    domain.BaseModel{ID: id, CreatedAt: at(i), UpdatedAt: at(i)},
			Role:         role,
			FullName:     name,
			Email:        email,
			Phone:        fmt.Sprintf("+91-98%08d", 1000+i),
			PasswordHash: hash,
			Tier:         domain.TierSilver,
			Status:       domain.UserActive,
		}
		if role == domain.RoleCustomer {
			u.LifetimeSpend = float64(i%7) * 1500
			u.WalletBalance = float64(i%4) * 250
			switch {
			case u.LifetimeSpend >= 7500:
				u.Tier = domain.TierPlatinum
			case u.LifetimeSpend >= 4500:
				u.Tier = domain.TierGold
			}
			if i%9 == 0 {
				u.Status = domain.UserBlocked
			}
		}
		records = append(records, u.Record())
	}

	add(ID("user", 0), domain.RoleAdmin, "Admin User", "admin@example.com", 0)
	for v := range Vendors {
		add(ID("vendor-owner", v), domain.RoleVendor, "Owner "+businesses[v], fmt.Sprintf("vendor%d@example.com", v+1), 1+v)
	}
	for c := range Customers {
		name := firstNames[c%len(firstNames)] + " " + lastNames[c%len(lastNames)]
		add(ID("user", c+1), domain.RoleCustomer, name, fmt.Sprintf("customer%d@example.com", c+1), 1+Vendors+c)
	}
	return records
}

func demoVendors() []query.Record {
	records := make([]query.Record, 0, Vendors)
	kyc := []domain.KYCStatus{domain.KYCVerified, domain.KYCVerified, domain.KYCPending, domain.KYCVerified, domain.KYCRejected, domain.KYCPending}
	for v := range Vendors {
		vendor := domain.Vendor{
			BaseModel:        domain.BaseModel{ID: ID("vendor", v), CreatedAt: at(2 + v), UpdatedAt: at(2 + v)},
			UserID:           ID("vendor-owner", v),
			BusinessName:     businesses[v],
			KYCStatus:        kyc[v],
			JobsDone:         v * 17 % 60,
			Rating:           3.5 + float64(v%4)*0.5,
			WorkingHours:     []domain.WorkingHour{{Day: "MON-SAT", Start: "09:00", End: "18:00"}},
			ServiceLocations: []domain.ServiceLocation{cities[v%len(cities)], cities[(v+1)%len(cities)]},
		}
		records = append(records, vendor.Record())
	}
	return records
}

func demoServices() []query.Record {
	records := make([]query.Record, 0, Services)
	for s := range Services {
		v := s % Vendors
		offer := offerings[v]
		status := domain.ServiceActive
		if s%5 == 4 {
			status = domain.ServiceInactive
		}
		svc := domain.Service{
			BaseModel:   domain.BaseModel{ID: ID("service", s), CreatedAt: at(10 + s), UpdatedAt: at(10 + s)},
			VendorID:    ID("vendor", v),
			CategoryID:  categories[v],
			Name:        fmt.Sprintf("%s %s", offer.name, [...]string{"Basic", "Standard", "Premium"}[s/Vendors]),
			Description: offer.description,
			BasePrice:   float64(300 + 150*s),
			Status:      status,
		}
		records = append(records, svc.Record())
	}
	return records
}

func demoBookings() []query.Record {
	records := make([]query.Record, 0, Bookings)
	for b := range Bookings {
		s := b % Services
		city := cities[b%len(cities)]
		booking := domain.Booking{
			BaseModel:  domain.BaseModel{ID: ID("booking", b), CreatedAt: at(48 + b*6), UpdatedAt: at(48 + b*6)},
			CustomerID: ID("user", b%Customers+1),
			VendorID:   ID("vendor", s%Vendors),
			ServiceID:  ID("service", s),
			AddressSnapshot: domain.Address{
				Line1:   fmt.Sprintf("%d Main Road", 10+b),
				City:    city.City,
				State:   city.State,
				Pincode: city.Pincode,
			},
			ScheduledDate: at(72 + b*12),
			Status:        bookingStatuses[b%len(bookingStatuses)],
			TotalAmount:   float64(300 + 150*s),
		}
		records = append(records, booking.Record())
	}
	return records
}
