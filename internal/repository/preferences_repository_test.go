package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"techshift/internal/database"

	"github.com/google/uuid"
)

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan dest mismatch: %d != %d", len(dest), len(r.vals))
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *uuid.UUID:
			*d = r.vals[i].(uuid.UUID)
		case *string:
			*d = r.vals[i].(string)
		case **int:
			if r.vals[i] == nil {
				*d = nil
			} else {
				*d = r.vals[i].(*int)
			}
		case *bool:
			*d = r.vals[i].(bool)
		case *time.Time:
			*d = r.vals[i].(time.Time)
		default:
			return fmt.Errorf("unsupported scan type %T", dest[i])
		}
	}
	return nil
}

type fakeRows struct {
	rows []fakeRow
	pos  int
}

func (r *fakeRows) Close()     {}
func (r *fakeRows) Err() error { return nil }
func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}
func (r *fakeRows) Scan(dest ...any) error { return r.rows[r.pos-1].Scan(dest...) }

type fakeDB struct {
	mu     sync.Mutex
	byUser map[uuid.UUID][]any
}

func newFakeDB() *fakeDB {
	return &fakeDB{byUser: map[uuid.UUID][]any{}}
}

func (db *fakeDB) Ping(ctx context.Context) error { return nil }
func (db *fakeDB) Close() error                   { return nil }

func (db *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if !strings.HasPrefix(q, "insert into job_preferences") {
		return 0, fmt.Errorf("unexpected exec: %s", q)
	}

	// id, user_id, target_roles, locations, remote_preference, min_salary,
	// tech_stack, auto_apply_enabled, updated_at
	userID := args[1].(uuid.UUID)
	row := make([]any, len(args))
	copy(row, args)
	if existing, ok := db.byUser[userID]; ok {
		row[0] = existing[0] // upsert keeps the original id
	}
	db.byUser[userID] = row
	return 1, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	db.mu.Lock()
	defer db.mu.Unlock()

	userID := args[0].(uuid.UUID)
	row, ok := db.byUser[userID]
	if !ok {
		return fakeRow{err: sql.ErrNoRows}
	}
	return fakeRow{vals: row}
}

func (db *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := &fakeRows{}
	for _, row := range db.byUser {
		out.rows = append(out.rows, fakeRow{vals: row})
	}
	return out, nil
}

func TestPreferencesRepository_UpsertAndFind(t *testing.T) {
	db := newFakeDB()
	repo := NewPostgresPreferencesRepository(db)
	userID := uuid.New()

	min := 120000
	err := repo.Upsert(context.Background(), JobPreferences{
		UserID:           userID,
		TargetRoles:      []string{"ML Engineer", "Data Scientist"},
		Locations:        []string{"Berlin"},
		RemotePreference: "remote",
		MinSalary:        &min,
		TechStack:        []string{"Python", "PyTorch"},
		AutoApplyEnabled: true,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.FindByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got.UserID != userID {
		t.Fatalf("user id mismatch")
	}
	if len(got.TargetRoles) != 2 || got.TargetRoles[1] != "Data Scientist" {
		t.Fatalf("target roles = %v", got.TargetRoles)
	}
	if got.MinSalary == nil || *got.MinSalary != 120000 {
		t.Fatalf("min salary = %v", got.MinSalary)
	}
	if !got.AutoApplyEnabled {
		t.Fatalf("auto apply lost")
	}
}

func TestPreferencesRepository_UpsertReplaces(t *testing.T) {
	db := newFakeDB()
	repo := NewPostgresPreferencesRepository(db)
	userID := uuid.New()

	if err := repo.Upsert(context.Background(), JobPreferences{UserID: userID, TargetRoles: []string{"A"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	first, _ := repo.FindByUserID(context.Background(), userID)

	if err := repo.Upsert(context.Background(), JobPreferences{UserID: userID, TargetRoles: []string{"B"}}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second, err := repo.FindByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("upsert should keep the row id")
	}
	if len(second.TargetRoles) != 1 || second.TargetRoles[0] != "B" {
		t.Fatalf("target roles = %v", second.TargetRoles)
	}
}

func TestPreferencesRepository_NotFound(t *testing.T) {
	repo := NewPostgresPreferencesRepository(newFakeDB())
	_, err := repo.FindByUserID(context.Background(), uuid.New())
	if !errors.Is(err, ErrPreferencesNotFound) {
		t.Fatalf("expected ErrPreferencesNotFound, got %v", err)
	}
}

func TestPreferencesRepository_NilUser(t *testing.T) {
	repo := NewPostgresPreferencesRepository(newFakeDB())
	if err := repo.Upsert(context.Background(), JobPreferences{}); err == nil {
		t.Fatalf("expected error for nil user id")
	}
}

func TestPreferencesRepository_ListAll(t *testing.T) {
	db := newFakeDB()
	repo := NewPostgresPreferencesRepository(db)

	for i := 0; i < 3; i++ {
		if err := repo.Upsert(context.Background(), JobPreferences{UserID: uuid.New(), TargetRoles: []string{"ML"}}); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(all))
	}
}
