package domain

import (
	"context"

	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// UserRole is the marketplace role of an account.
type UserRole string

const (
	RoleAdmin    UserRole = "ADMIN"
	RoleCustomer UserRole = "CUSTOMER"
	RoleVendor   UserRole = "VENDOR"
)

// UserStatus is the account state.
type UserStatus string

const (
	UserActive  UserStatus = "ACTIVE"
	UserBlocked UserStatus = "BLOCKED"
)

// UserTier is the loyalty tier of a customer.
type UserTier string

const (
	TierSilver   UserTier = "SILVER"
	TierGold     UserTier = "GOLD"
	TierPlatinum UserTier = "PLATINUM"
)

// User represents an account in the marketplace.
type User struct {
	BaseModel
	Role          UserRole   `gorm:"column:role;size:16;index;not null" json:"role"`
	FullName      string     `gorm:"column:fullName;size:100;not null" json:"fullName"`
	Email         string     `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Phone         string     `gorm:"column:phone;size:32" json:"phone,omitempty"`
	PasswordHash  string     `gorm:"column:passwordHash;size:255;not null" json:"-"`
	Tier          UserTier   `gorm:"column:tier;size:16;default:SILVER" json:"tier"`
	WalletBalance float64    `gorm:"column:walletBalance;default:0" json:"walletBalance"`
	LifetimeSpend float64    `gorm:"column:lifetimeSpend;default:0" json:"lifetimeSpend"`
	Status        UserStatus `gorm:"column:status;size:16;index;default:ACTIVE" json:"status"`
	Version       int        `gorm:"column:__v;default:0" json:"-"`
}

// TableName overrides the GORM table name.
func (User) TableName() string { return CollectionUsers }

// Record returns the stored document form of u.
func (u User) Record() query.Record {
	r := u.BaseModel.record()
	r["role"] = string(u.Role)
	r["fullName"] = u.FullName
	r["email"] = u.Email
	r["phone"] = u.Phone
	r["passwordHash"] = u.PasswordHash
	r["tier"] = string(u.Tier)
	r["walletBalance"] = u.WalletBalance
	r["lifetimeSpend"] = u.LifetimeSpend
	r["status"] = string(u.Status)
	r["__v"] = u.Version
	return r
}

// UserFilter narrows a user listing. Zero fields place no constraint.
type UserFilter struct {
	Role   UserRole
	Status UserStatus
	Tier   UserTier
}

// UserStats summarises the user collection.
type UserStats struct {
	Total            int64            `json:"total"`
	ActiveUsers      int64            `json:"activeUsers"`
	BlockedUsers     int64            `json:"blockedUsers"`
	RoleDistribution map[string]int64 `json:"roleDistribution"`
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	List(ctx context.Context, params query.Params, filter query.Filter) (*query.Page, error)
	GetByID(ctx context.Context, id string) (query.Record, error)
	Count(ctx context.Context, filter query.Filter) (int64, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}

// UserService defines the business logic interface for users.
type UserService interface {
	ListUsers(ctx context.Context, params query.Params, filter UserFilter) (*query.Page, error)
	ListByRole(ctx context.Context, role UserRole, params query.Params) (*query.Page, error)
	ListByStatus(ctx context.Context, status UserStatus, params query.Params) (*query.Page, error)
	GetUser(ctx context.Context, id string) (query.Record, error)
	Stats(ctx context.Context) (*UserStats, error)
}

// Valid reports whether r is a known role.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleCustomer, RoleVendor:
		return true
	}
	return false
}

// Valid reports whether s is a known account state.
func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserBlocked
}
