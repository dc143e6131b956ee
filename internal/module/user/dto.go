package user

import "github.com/mariyaselvam/service-booking-BE/internal/domain"

// ListUsersQuery holds the resource filters accepted by GET /api/v1/users.
// Pagination parameters are read separately and never rejected.
type ListUsersQuery struct {
	Role   string `form:"role" binding:"omitempty,oneof=ADMIN CUSTOMER VENDOR"`
	Status string `form:"status" binding:"omitempty,oneof=ACTIVE BLOCKED"`
	Tier   string `form:"tier" binding:"omitempty,oneof=SILVER GOLD PLATINUM"`
}

// Filter converts q into a domain filter.
func (q ListUsersQuery) Filter() domain.UserFilter {
	return domain.UserFilter{
		Role:   domain.UserRole(q.Role),
		Status: domain.UserStatus(q.Status),
		Tier:   domain.UserTier(q.Tier),
	}
}
