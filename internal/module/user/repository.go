package user

import (
	"context"
	"log/slog"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

var (
	// searchFields are matched by the search parameter.
	searchFields = []string{"fullName", "email"}
	// userProjection hides credentials and the document version.
	userProjection = query.ParseProjection("-passwordHash -__v")
)

// userRepository implements domain.UserRepository over a document collection.
type userRepository struct {
	coll   store.Collection
	logger *slog.Logger
}

// NewUserRepository creates a new UserRepository backed by the given collection.
func NewUserRepository(coll store.Collection, logger *slog.Logger) domain.UserRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &userRepository{coll: coll, logger: logger}
}

// List returns one page of users matching filter and the search parameter.
func (r *userRepository) List(ctx context.Context, params query.Params, filter query.Filter) (*query.Page, error) {
	params.SearchFields = searchFields
	page, err := query.Paginate(ctx, r.coll, params, filter, userProjection)
	if err != nil {
		return nil, r.mapError(ctx, "list", err)
	}
	return page, nil
}

// GetByID retrieves a user by id.
func (r *userRepository) GetByID(ctx context.Context, id string) (query.Record, error) {
	records, err := r.coll.Find(ctx, query.FindOptions{
		Filter:     query.Eq(query.IDField, id),
		Limit:      1,
		Projection: userProjection,
	})
	if err != nil {
		return nil, r.mapError(ctx, "get", err)
	}
	if len(records) == 0 {
		return nil, domain.NotFound("user")
	}
	return records[0], nil
}

// Count returns the number of users matching filter.
func (r *userRepository) Count(ctx context.Context, filter query.Filter) (int64, error) {
	n, err := r.coll.Count(ctx, filter)
	if err != nil {
		return 0, r.mapError(ctx, "count", err)
	}
	return n, nil
}

// CountByRole returns the number of users per role.
func (r *userRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	counts, err := r.coll.CountBy(ctx, "role", nil)
	if err != nil {
		return nil, r.mapError(ctx, "count by role", err)
	}
	return counts, nil
}

func (r *userRepository) mapError(ctx context.Context, op string, err error) error {
	r.logger.ErrorContext(ctx, "user store error",
		slog.String("collection", domain.CollectionUsers),
		slog.String("op", op),
		slog.Any("error", err),
	)
	return store.MapError(err)
}
