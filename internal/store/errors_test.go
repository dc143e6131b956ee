package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
)

func TestMapError(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"generic", cause, domain.CodeInternal},
		{"deadline", fmt.Errorf("find: %w", context.DeadlineExceeded), domain.CodeUnavailable},
		{"canceled", context.Canceled, domain.CodeUnavailable},
		{"already mapped", domain.NotFound("user"), domain.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			var appErr *domain.AppError
			if !errors.As(got, &appErr) {
				t.Fatalf("MapError() = %T; want *domain.AppError", got)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %d; want %d", appErr.Code, tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("cause not reachable through errors.Is")
			}
		})
	}

	if MapError(nil) != nil {
		t.Error("MapError(nil) should be nil")
	}
}
