package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"techshift/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPreferencesNotFound = errors.New("job preferences not found")

// JobPreferences is one user's stored search profile: what they are looking
// for and what the scorer should match against.
type JobPreferences struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	TargetRoles      []string
	Locations        []string
	RemotePreference string
	MinSalary        *int
	TechStack        []string
	AutoApplyEnabled bool
	UpdatedAt        time.Time
}

type PreferencesRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (JobPreferences, error)
	Upsert(ctx context.Context, prefs JobPreferences) error
	ListAll(ctx context.Context) ([]JobPreferences, error)
}

type PostgresPreferencesRepository struct {
	db database.DB
}

func NewPostgresPreferencesRepository(db database.DB) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{db: db}
}

func (r *PostgresPreferencesRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (JobPreferences, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, target_roles, locations, remote_preference, min_salary, tech_stack, auto_apply_enabled, updated_at
		 FROM job_preferences WHERE user_id = $1 LIMIT 1`,
		userID,
	)

	var p JobPreferences
	var targetRoles, locations, techStack string
	err := row.Scan(&p.ID, &p.UserID, &targetRoles, &locations, &p.RemotePreference, &p.MinSalary, &techStack, &p.AutoApplyEnabled, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return JobPreferences{}, ErrPreferencesNotFound
		}
		return JobPreferences{}, err
	}

	p.TargetRoles = splitList(targetRoles)
	p.Locations = splitList(locations)
	p.TechStack = splitList(techStack)
	return p, nil
}

func (r *PostgresPreferencesRepository) Upsert(ctx context.Context, prefs JobPreferences) error {
	if prefs.UserID == uuid.Nil {
		return errors.New("nil user_id")
	}
	id := prefs.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO job_preferences (id, user_id, target_roles, locations, remote_preference, min_salary, tech_stack, auto_apply_enabled, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 ON CONFLICT (user_id) DO UPDATE SET
			target_roles = EXCLUDED.target_roles,
			locations = EXCLUDED.locations,
			remote_preference = EXCLUDED.remote_preference,
			min_salary = EXCLUDED.min_salary,
			tech_stack = EXCLUDED.tech_stack,
			auto_apply_enabled = EXCLUDED.auto_apply_enabled,
			updated_at = EXCLUDED.updated_at`,
		id,
		prefs.UserID,
		joinList(prefs.TargetRoles),
		joinList(prefs.Locations),
		strings.TrimSpace(prefs.RemotePreference),
		prefs.MinSalary,
		joinList(prefs.TechStack),
		prefs.AutoApplyEnabled,
		time.Now().UTC(),
	)
	return err
}

func (r *PostgresPreferencesRepository) ListAll(ctx context.Context) ([]JobPreferences, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, target_roles, locations, remote_preference, min_salary, tech_stack, auto_apply_enabled, updated_at
		 FROM job_preferences ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobPreferences, 0)
	for rows.Next() {
		var p JobPreferences
		var targetRoles, locations, techStack string
		if err := rows.Scan(&p.ID, &p.UserID, &targetRoles, &locations, &p.RemotePreference, &p.MinSalary, &techStack, &p.AutoApplyEnabled, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.TargetRoles = splitList(targetRoles)
		p.Locations = splitList(locations)
		p.TechStack = splitList(techStack)
		out = append(out, p)
	}
	return out, rows.Err()
}

// Stored as comma-separated text to keep the schema portable.
func joinList(items []string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		clean = append(clean, it)
	}
	return strings.Join(clean, ",")
}

func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
