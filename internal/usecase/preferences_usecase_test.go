package usecase

import (
	"context"
	"errors"
	"testing"

	"techshift/internal/repository"

	"github.com/google/uuid"
)

type fakePrefsRepo struct {
	byUser map[uuid.UUID]repository.JobPreferences
	err    error

	lastUpsert repository.JobPreferences
}

func newFakePrefsRepo() *fakePrefsRepo {
	return &fakePrefsRepo{byUser: map[uuid.UUID]repository.JobPreferences{}}
}

func (f *fakePrefsRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (repository.JobPreferences, error) {
	if f.err != nil {
		return repository.JobPreferences{}, f.err
	}
	p, ok := f.byUser[userID]
	if !ok {
		return repository.JobPreferences{}, repository.ErrPreferencesNotFound
	}
	return p, nil
}

func (f *fakePrefsRepo) Upsert(ctx context.Context, prefs repository.JobPreferences) error {
	if f.err != nil {
		return f.err
	}
	f.lastUpsert = prefs
	f.byUser[prefs.UserID] = prefs
	return nil
}

func (f *fakePrefsRepo) ListAll(ctx context.Context) ([]repository.JobPreferences, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]repository.JobPreferences, 0, len(f.byUser))
	for _, p := range f.byUser {
		out = append(out, p)
	}
	return out, nil
}

func TestPreferences_Get_NilUser(t *testing.T) {
	uc := NewPreferencesUsecase(newFakePrefsRepo())
	if _, err := uc.Get(context.Background(), uuid.Nil); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPreferences_Get_NotFound(t *testing.T) {
	uc := NewPreferencesUsecase(newFakePrefsRepo())
	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrPreferencesNotFound) {
		t.Fatalf("expected ErrPreferencesNotFound, got %v", err)
	}
}

func TestPreferences_Get_RepoError(t *testing.T) {
	repo := newFakePrefsRepo()
	repo.err = errors.New("db down")
	uc := NewPreferencesUsecase(repo)
	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestPreferences_Save_Validation(t *testing.T) {
	uc := NewPreferencesUsecase(newFakePrefsRepo())
	userID := uuid.New()

	neg := -1
	if err := uc.Save(context.Background(), userID, PreferencesInput{MinSalary: &neg}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative salary: expected ErrInvalidInput, got %v", err)
	}

	if err := uc.Save(context.Background(), userID, PreferencesInput{RemotePreference: "moonbase"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("bad remote preference: expected ErrInvalidInput, got %v", err)
	}

	if err := uc.Save(context.Background(), uuid.Nil, PreferencesInput{}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("nil user: expected ErrUnauthorized, got %v", err)
	}
}

func TestPreferences_Save_DefaultsAndRoundTrip(t *testing.T) {
	repo := newFakePrefsRepo()
	uc := NewPreferencesUsecase(repo)
	userID := uuid.New()

	min := 120000
	err := uc.Save(context.Background(), userID, PreferencesInput{
		TargetRoles:      []string{"ML Engineer"},
		Locations:        []string{"Berlin"},
		RemotePreference: "  HYBRID ",
		MinSalary:        &min,
		TechStack:        []string{"Python", "PyTorch"},
		AutoApplyEnabled: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastUpsert.RemotePreference != "hybrid" {
		t.Fatalf("remote preference not normalized: %q", repo.lastUpsert.RemotePreference)
	}

	// Empty preference defaults to remote.
	if err := uc.Save(context.Background(), userID, PreferencesInput{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.lastUpsert.RemotePreference != "remote" {
		t.Fatalf("empty remote preference should default to remote, got %q", repo.lastUpsert.RemotePreference)
	}

	got, err := uc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.UserID != userID {
		t.Fatalf("round trip lost user id")
	}
}
