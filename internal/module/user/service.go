package user

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// userService implements domain.UserService.
type userService struct {
	repo domain.UserRepository
}

// NewUserService creates a new UserService with the given repository.
func NewUserService(repo domain.UserRepository) domain.UserService {
	return &userService{repo: repo}
}

// ListUsers returns a page of users narrowed by filter.
func (s *userService) ListUsers(ctx context.Context, params query.Params, filter domain.UserFilter) (*query.Page, error) {
	return s.repo.List(ctx, params, buildFilter(filter))
}

// ListByRole returns a page of users holding role.
func (s *userService) ListByRole(ctx context.Context, role domain.UserRole, params query.Params) (*query.Page, error) {
	if !role.Valid() {
		return nil, domain.Invalid("invalid role", nil)
	}
	return s.repo.List(ctx, params, query.Eq("role", string(role)))
}

// ListByStatus returns a page of users in status.
func (s *userService) ListByStatus(ctx context.Context, status domain.UserStatus, params query.Params) (*query.Page, error) {
	if !status.Valid() {
		return nil, domain.Invalid("invalid status", nil)
	}
	return s.repo.List(ctx, params, query.Eq("status", string(status)))
}

// GetUser retrieves a user by id.
func (s *userService) GetUser(ctx context.Context, id string) (query.Record, error) {
	if id == "" {
		return nil, domain.Invalid("id is required", nil)
	}
	return s.repo.GetByID(ctx, id)
}

// Stats counts users overall, per status and per role. The counts run
// concurrently and are not a single snapshot.
func (s *userService) Stats(ctx context.Context) (*domain.UserStats, error) {
	stats := &domain.UserStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Total, err = s.repo.Count(ctx, nil)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveUsers, err = s.repo.Count(ctx, query.Eq("status", string(domain.UserActive)))
		return err
	})
	g.Go(func() (err error) {
		stats.BlockedUsers, err = s.repo.Count(ctx, query.Eq("status", string(domain.UserBlocked)))
		return err
	})
	g.Go(func() (err error) {
		stats.RoleDistribution, err = s.repo.CountByRole(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if stats.RoleDistribution == nil {
		stats.RoleDistribution = map[string]int64{}
	}
	return stats, nil
}

func buildFilter(f domain.UserFilter) query.Filter {
	var conds []query.Filter
	if f.Role != "" {
		conds = append(conds, query.Eq("role", string(f.Role)))
	}
	if f.Status != "" {
		conds = append(conds, query.Eq("status", string(f.Status)))
	}
	if f.Tier != "" {
		conds = append(conds, query.Eq("tier", string(f.Tier)))
	}
	return query.AllOf(conds...)
}
