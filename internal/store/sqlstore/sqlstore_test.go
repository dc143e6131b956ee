package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mariyaselvam/service-booking-BE/internal/domain"
	"github.com/mariyaselvam/service-booking-BE/internal/query"
)

// setupTestDB opens a file-backed SQLite database so that concurrent
// connections see the same tables.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(domain.Models()...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	opts := make([]Option, 0)
	for table, cols := range domain.JSONColumns() {
		opts = append(opts, JSONColumns(table, cols...))
	}
	db := New(gdb, opts...)
	t.Cleanup(func() { db.Close(context.Background()) })
	return db
}

func seedUsers(t *testing.T, db *DB) *Table {
	t.Helper()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []domain.User{
		{FullName: "John Doe", Email: "john@example.com", Role: domain.RoleCustomer, Status: domain.UserActive},
		{FullName: "Jane Roe", Email: "jane@example.com", Role: domain.RoleVendor, Status: domain.UserActive},
		{FullName: "Johnny Bravo", Email: "bravo@example.com", Role: domain.RoleCustomer, Status: domain.UserBlocked},
		{FullName: "Ana 50% Off", Email: "ana@example.com", Role: domain.RoleAdmin, Status: domain.UserActive},
		{FullName: "Ana 500 Off", Email: "ana2@example.com", Role: domain.RoleCustomer, Status: domain.UserActive},
	}
	records := make([]query.Record, len(users))
	for i, u := range users {
		u.ID = string(rune('a' + i))
		u.PasswordHash = "hash"
		u.Tier = domain.TierSilver
		u.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		u.UpdatedAt = u.CreatedAt
		records[i] = u.Record()
	}
	table := db.Collection(domain.CollectionUsers)
	if err := table.Insert(context.Background(), records...); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return table
}

func tableIDs(t *testing.T, table *Table, opts query.FindOptions) []string {
	t.Helper()
	records, err := table.Find(context.Background(), opts)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	out := make([]string, len(records))
	for i, r := range records {
		out[i], _ = r["id"].(string)
	}
	return out
}

func TestTable_FindFilters(t *testing.T) {
	table := seedUsers(t, setupTestDB(t))
	byID := query.Sort{Field: "id", Direction: query.Asc}

	tests := []struct {
		name   string
		filter query.Filter
		want   []string
	}{
		{"nil", nil, []string{"a", "b", "c", "d", "e"}},
		{"eq", query.Eq("role", "CUSTOMER"), []string{"a", "c", "e"}},
		{"ne", query.Ne("status", "ACTIVE"), []string{"c"}},
		{"in", query.In("role", "ADMIN", "VENDOR"), []string{"b", "d"}},
		{"gte", query.Gte("id", "d"), []string{"d", "e"}},
		{"contains case-insensitive", query.Contains("fullName", "JOHN"), []string{"a", "c"}},
		{"contains escapes percent", query.Contains("fullName", "50%"), []string{"d"}},
		{"contains escapes underscore", query.Contains("email", "ana_"), []string{}},
		{"empty or", query.Or{}, []string{}},
		{"empty and", query.And{}, []string{"a", "b", "c", "d", "e"}},
		{"single member or", query.Or{query.Eq("id", "b")}, []string{"b"}},
		{"or with unconstrained member", query.Or{query.Eq("id", "b"), query.And{}}, []string{"a", "b", "c", "d", "e"}},
		{
			"filter and search",
			query.And{query.Eq("role", "CUSTOMER"), query.Or{query.Contains("fullName", "john"), query.Contains("email", "john")}},
			[]string{"a", "c"},
		},
		{
			"single member or after condition",
			query.And{query.Eq("role", "VENDOR"), query.Or{query.Contains("fullName", "john")}},
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tableIDs(t, table, query.FindOptions{Filter: tt.filter, Sort: byID})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v; want %v", got, tt.want)
			}
			n, err := table.Count(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if n != int64(len(tt.want)) {
				t.Errorf("Count() = %d; want %d", n, len(tt.want))
			}
		})
	}
}

func TestTable_FindSortWindowProjection(t *testing.T) {
	table := seedUsers(t, setupTestDB(t))

	got := tableIDs(t, table, query.FindOptions{
		Sort:  query.Sort{Field: "createdAt", Direction: query.Desc},
		Skip:  1,
		Limit: 2,
	})
	if want := []string{"d", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("ids = %v; want %v", got, want)
	}

	records, err := table.Find(context.Background(), query.FindOptions{
		Filter:     query.Eq("id", "a"),
		Projection: query.Include("fullName"),
	})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if want := []query.Record{{"id": "a", "fullName": "John Doe"}}; !reflect.DeepEqual(records, want) {
		t.Errorf("Find(include) = %v; want %v", records, want)
	}

	records, err = table.Find(context.Background(), query.FindOptions{Projection: query.Exclude("passwordHash", "__v")})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	for _, r := range records {
		if _, ok := r["passwordHash"]; ok {
			t.Fatalf("record %v leaks passwordHash", r["id"])
		}
		if _, ok := r["__v"]; ok {
			t.Fatalf("record %v leaks __v", r["id"])
		}
		if _, ok := r["email"]; !ok {
			t.Fatalf("record %v lost email", r["id"])
		}
	}
}

func TestTable_CountBy(t *testing.T) {
	table := seedUsers(t, setupTestDB(t))

	got, err := table.CountBy(context.Background(), "role", nil)
	if err != nil {
		t.Fatalf("CountBy() error = %v", err)
	}
	want := map[string]int64{"CUSTOMER": 3, "VENDOR": 1, "ADMIN": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountBy() = %v; want %v", got, want)
	}

	got, err = table.CountBy(context.Background(), "role", query.Eq("status", "ACTIVE"))
	if err != nil {
		t.Fatalf("CountBy() error = %v", err)
	}
	if want := map[string]int64{"CUSTOMER": 2, "VENDOR": 1, "ADMIN": 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("CountBy(active) = %v; want %v", got, want)
	}
}

func TestTable_JSONColumns(t *testing.T) {
	db := setupTestDB(t)
	vendors := db.Collection(domain.CollectionVendors)

	v := domain.Vendor{
		BaseModel:        domain.BaseModel{ID: "v1", CreatedAt: time.Now().UTC()},
		UserID:           "u1",
		BusinessName:     "Sparkle",
		KYCStatus:        domain.KYCVerified,
		JobsDone:         7,
		ServiceLocations: []domain.ServiceLocation{{City: "Chennai", State: "TN", Pincode: "600001"}},
		WorkingHours:     []domain.WorkingHour{{Day: "MON", Start: "09:00", End: "18:00"}},
	}
	if err := vendors.Insert(context.Background(), v.Record()); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	records, err := vendors.Find(context.Background(), query.FindOptions{Filter: query.Gte("jobsDone", 5)})
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d; want 1", len(records))
	}
	locations, ok := records[0]["serviceLocations"].([]any)
	if !ok || len(locations) != 1 {
		t.Fatalf("serviceLocations = %#v; want decoded list", records[0]["serviceLocations"])
	}
	if loc, _ := locations[0].(map[string]any); loc["city"] != "Chennai" {
		t.Errorf("serviceLocations[0] = %#v; want city Chennai", locations[0])
	}
}

func TestTable_Errors(t *testing.T) {
	table := seedUsers(t, setupTestDB(t))
	ctx := context.Background()

	if _, err := table.Find(ctx, query.FindOptions{Filter: query.Eq("serviceLocations.city", "x")}); !errors.Is(err, ErrNestedField) {
		t.Errorf("nested filter error = %v; want ErrNestedField", err)
	}
	if _, err := table.Find(ctx, query.FindOptions{Sort: query.Sort{Field: "a.b", Direction: query.Asc}}); !errors.Is(err, ErrNestedField) {
		t.Errorf("nested sort error = %v; want ErrNestedField", err)
	}
	if _, err := table.Find(ctx, query.FindOptions{Sort: query.Sort{Field: "noSuchColumn", Direction: query.Asc}}); err == nil {
		t.Error("unknown sort column: expected store error")
	}
	if _, err := table.Count(ctx, query.Condition{Field: "role", Op: query.OpIn, Value: "ADMIN"}); err == nil {
		t.Error("in condition without a list: expected error")
	}
	if _, err := table.Count(ctx, query.Contains("fullName", "")); err != nil {
		t.Errorf("empty contains error = %v; want nil", err)
	}
}

func TestTable_Paginate(t *testing.T) {
	table := seedUsers(t, setupTestDB(t))

	params := query.Params{Page: "1", Limit: "2", Search: "john", SearchFields: []string{"fullName", "email"}}
	page, err := query.Paginate(context.Background(), table, params, query.Eq("role", "CUSTOMER"), query.Exclude("passwordHash", "__v"))
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}

	want := query.Meta{Page: 1, Limit: 2, Total: 2, TotalPages: 1}
	if page.Meta != want {
		t.Errorf("Meta = %+v; want %+v", page.Meta, want)
	}
	// Newest first: Johnny Bravo was created after John Doe.
	if len(page.Data) != 2 || page.Data[0]["id"] != "c" || page.Data[1]["id"] != "a" {
		t.Errorf("Data = %v", page.Data)
	}
}

func TestDB_Ping(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
}

func TestTable_PaginateHugePage(t *testing.T) {
	table := seedUsers(t, setupTestDB(t))

	page, err := query.Paginate(context.Background(), table, query.Params{Page: "9223372036854775807", Limit: "100"}, nil, query.Projection{})
	if err != nil {
		t.Fatalf("Paginate() error = %v", err)
	}
	if len(page.Data) != 0 {
		t.Errorf("len(Data) = %d; want 0", len(page.Data))
	}
	want := query.Meta{Page: query.MaxPage, Limit: 100, Total: 5, TotalPages: 1}
	if page.Meta != want {
		t.Errorf("Meta = %+v; want %+v", page.Meta, want)
	}
}

func TestTable_NeMatchesNull(t *testing.T) {
	db := setupTestDB(t)
	services := db.Collection(domain.CollectionServices)
	ctx := context.Background()

	for _, r := range []query.Record{
		{"id": "s1", "vendorId": "v1", "categoryId": "c1", "name": "Deep Cleaning", "basePrice": 100.0, "description": "kitchen"},
		{"id": "s2", "vendorId": "v1", "categoryId": "c1", "name": "Sofa Cleaning", "basePrice": 200.0, "description": "living room"},
		{"id": "s3", "vendorId": "v1", "categoryId": "c1", "name": "AC Repair", "basePrice": 300.0, "description": nil},
	} {
		if err := services.Insert(ctx, r); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	byID := query.Sort{Field: "id", Direction: query.Asc}

	tests := []struct {
		name   string
		filter query.Filter
		want   []string
	}{
		{"ne includes null", query.Ne("description", "kitchen"), []string{"s2", "s3"}},
		{"ne nil means present", query.Ne("description", nil), []string{"s1", "s2"}},
		{"ne inside and", query.And{query.Eq("vendorId", "v1"), query.Ne("description", "living room")}, []string{"s1", "s3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tableIDs(t, services, query.FindOptions{Filter: tt.filter, Sort: byID})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ids = %v; want %v", got, tt.want)
			}
			n, err := services.Count(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Count() error = %v", err)
			}
			if n != int64(len(tt.want)) {
				t.Errorf("Count() = %d; want %d", n, len(tt.want))
			}
		})
	}
}
