package store

import (
	"context"
	"errors"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
)

// MapError converts a backend error into a domain error. The cause stays
// reachable through errors.Unwrap.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.NewAppError(domain.CodeUnavailable, "request canceled", err)
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
