package usecase

import (
	"context"
	"errors"
	"strings"

	"techshift/internal/repository"

	"github.com/google/uuid"
)

var allowedRemotePreferences = map[string]struct{}{
	"remote": {},
	"hybrid": {},
	"onsite": {},
	"any":    {},
}

type PreferencesInput struct {
	TargetRoles      []string
	Locations        []string
	RemotePreference string
	MinSalary        *int
	TechStack        []string
	AutoApplyEnabled bool
}

type PreferencesUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (repository.JobPreferences, error)
	Save(ctx context.Context, userID uuid.UUID, in PreferencesInput) error
}

type Preferences struct {
	repo repository.PreferencesRepository
}

func NewPreferencesUsecase(repo repository.PreferencesRepository) *Preferences {
	return &Preferences{repo: repo}
}

func (u *Preferences) Get(ctx context.Context, userID uuid.UUID) (repository.JobPreferences, error) {
	if userID == uuid.Nil {
		return repository.JobPreferences{}, ErrUnauthorized
	}

	prefs, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return repository.JobPreferences{}, ErrPreferencesNotFound
		}
		return repository.JobPreferences{}, ErrInternal
	}
	return prefs, nil
}

func (u *Preferences) Save(ctx context.Context, userID uuid.UUID, in PreferencesInput) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if in.MinSalary != nil && *in.MinSalary < 0 {
		return ErrInvalidInput
	}

	remotePref := strings.TrimSpace(strings.ToLower(in.RemotePreference))
	if remotePref == "" {
		remotePref = "remote"
	}
	if _, ok := allowedRemotePreferences[remotePref]; !ok {
		return ErrInvalidInput
	}

	err := u.repo.Upsert(ctx, repository.JobPreferences{
		UserID:           userID,
		TargetRoles:      in.TargetRoles,
		Locations:        in.Locations,
		RemotePreference: remotePref,
		MinSalary:        in.MinSalary,
		TechStack:        in.TechStack,
		AutoApplyEnabled: in.AutoApplyEnabled,
	})
	if err != nil {
		return ErrInternal
	}
	return nil
}
