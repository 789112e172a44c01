package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"lele-api/internal/domain"
	"lele-api/pkg/database"
)

type ProfileRepository struct {
	db *database.PostgresDB
}

func NewProfileRepository(db *database.PostgresDB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, name, phone, avatar_url, is_admin, created_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.AvatarURL, &p.IsAdmin, &p.CreatedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}
	return &p, nil
}

// GetByID returns a profile or nil when none exists
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.Pool.QueryRow(ctx, query, id))
}

// GetByPhone returns a profile or nil when none exists
func (r *ProfileRepository) GetByPhone(ctx context.Context, phone string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE phone = $1`
	return scanProfile(r.db.Pool.QueryRow(ctx, query, phone))
}

// List returns every profile
func (r *ProfileRepository) List(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY name`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.AvatarURL, &p.IsAdmin, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Upsert creates the profile or updates its mutable fields
func (r *ProfileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, name, phone, avatar_url, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, phone = EXCLUDED.phone,
		    avatar_url = EXCLUDED.avatar_url, is_admin = EXCLUDED.is_admin
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query, p.ID, p.Name, p.Phone, p.AvatarURL, p.IsAdmin).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
