package catalog

import (
	"context"
	"log/slog"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

// catalogService implements domain.CatalogService with the query builder.
type catalogService struct {
	services query.Store
	logger   *slog.Logger
}

// NewCatalogService creates a new CatalogService reading from services.
func NewCatalogService(services query.Store, logger *slog.Logger) domain.CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalogService{services: services, logger: logger}
}

// ListServices returns a page of catalog entries narrowed by filter.
func (s *catalogService) ListServices(ctx context.Context, params query.Params, filter domain.ServiceFilter) (*query.Page, error) {
	b := query.From(s.services, params)
	if filter.CategoryID != "" {
		b = b.Filter(query.Eq("categoryId", filter.CategoryID))
	}
	if filter.VendorID != "" {
		b = b.Filter(query.Eq("vendorId", filter.VendorID))
	}
	if filter.Status != "" {
		b = b.Filter(query.Eq("status", string(filter.Status)))
	}
	if filter.MinPrice != nil {
		b = b.Filter(query.Gte("basePrice", *filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		b = b.Filter(query.Lte("basePrice", *filter.MaxPrice))
	}

	page, err := b.Search("name", "description").
		Sort().
		Select(query.Exclude("__v")).
		Paginate().
		Execute(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "catalog store error",
			slog.String("collection", domain.CollectionServices),
			slog.Any("error", err),
		)
		return nil, store.MapError(err)
	}
	return page, nil
}
