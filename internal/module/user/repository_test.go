package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
	"github.com/mariyaselvam/service-booking-BE/internal/store"
)

// setupTestRepo returns a repository over an in-memory collection holding
// six users: u1..u6, every third one a vendor and u5 blocked.
func setupTestRepo(t *testing.T) domain.UserRepository {
	t.Helper()
	coll := store.NewMemory().Collection(domain.CollectionUsers)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 6; i++ {
		u := domain.User{
			BaseModel:    domain.BaseModel{ID: fmt.Sprintf("u%d", i), CreatedAt: base.Add(time.Duration(i) * time.Hour)},
			Role:         domain.RoleCustomer,
			FullName:     fmt.Sprintf("User %d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: "secret",
			Status:       domain.UserActive,
		}
		if i%3 == 0 {
			u.Role = domain.RoleVendor
		}
		if i == 5 {
			u.Status = domain.UserBlocked
			u.FullName = "John Blocked"
		}
		if err := coll.Insert(context.Background(), u.Record()); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return NewUserRepository(coll, nil)
}

func TestUserRepository_List(t *testing.T) {
	repo := setupTestRepo(t)

	page, err := repo.List(context.Background(), query.Params{Limit: "4"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Meta.Total != 6 || page.Meta.TotalPages != 2 || len(page.Data) != 4 {
		t.Errorf("meta = %+v, len = %d; want total 6, 2 pages, 4 items", page.Meta, len(page.Data))
	}
	if page.Data[0]["id"] != "u6" {
		t.Errorf("first id = %v; want u6 (newest first)", page.Data[0]["id"])
	}
	for _, r := range page.Data {
		if _, ok := r["passwordHash"]; ok {
			t.Fatalf("user %v exposes passwordHash", r["id"])
		}
		if _, ok := r["__v"]; ok {
			t.Fatalf("user %v exposes __v", r["id"])
		}
	}
}

func TestUserRepository_List_SearchAndFilter(t *testing.T) {
	repo := setupTestRepo(t)

	tests := []struct {
		name      string
		params    query.Params
		filter    query.Filter
		wantTotal int64
	}{
		{"search by name", query.Params{Search: "john"}, nil, 1},
		{"search by email", query.Params{Search: "USER3@"}, nil, 1},
		{"search is literal", query.Params{Search: "user.@"}, nil, 0},
		{"filter", query.Params{}, query.Eq("role", "VENDOR"), 2},
		{"filter and search", query.Params{Search: "user"}, query.Eq("status", "BLOCKED"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(context.Background(), tt.params, tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Meta.Total != tt.wantTotal {
				t.Errorf("total = %d; want %d", page.Meta.Total, tt.wantTotal)
			}
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := setupTestRepo(t)

	t.Run("found", func(t *testing.T) {
		user, err := repo.GetByID(context.Background(), "u2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user["email"] != "user2@example.com" {
			t.Errorf("email = %v; want user2@example.com", user["email"])
		}
		if _, ok := user["passwordHash"]; ok {
			t.Error("passwordHash exposed")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(context.Background(), "nope")
		if !domain.IsNotFound(err) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestUserRepository_Counts(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	n, err := repo.Count(ctx, query.Eq("status", "ACTIVE"))
	if err != nil || n != 5 {
		t.Errorf("Count(active) = %d, %v; want 5", n, err)
	}

	roles, err := repo.CountByRole(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roles["CUSTOMER"] != 4 || roles["VENDOR"] != 2 || len(roles) != 2 {
		t.Errorf("CountByRole() = %v; want CUSTOMER 4, VENDOR 2", roles)
	}
}

// failingCollection returns err from every operation.
type failingCollection struct {
	err error
}

func (f failingCollection) Find(context.Context, query.FindOptions) ([]query.Record, error) {
	return nil, f.err
}
func (f failingCollection) Count(context.Context, query.Filter) (int64, error) { return 0, f.err }
func (f failingCollection) CountBy(context.Context, string, query.Filter) (map[string]int64, error) {
	return nil, f.err
}
func (f failingCollection) Insert(context.Context, ...query.Record) error { return f.err }

func TestUserRepository_StoreErrors(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewUserRepository(failingCollection{err: cause}, nil)
	ctx := context.Background()

	calls := map[string]func() error{
		"list":          func() error { _, err := repo.List(ctx, query.Params{}, nil); return err },
		"get":           func() error { _, err := repo.GetByID(ctx, "u1"); return err },
		"count":         func() error { _, err := repo.Count(ctx, nil); return err },
		"count by role": func() error { _, err := repo.CountByRole(ctx); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			if !domain.IsInternal(err) {
				t.Errorf("expected internal error, got %v", err)
			}
			if !errors.Is(err, cause) {
				t.Error("expected the store error to stay reachable")
			}
		})
	}
}
