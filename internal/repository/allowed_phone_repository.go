package repository

import (
	"context"
	"fmt"

	"lele-api/internal/domain"
	"lele-api/pkg/database"
)

type AllowedPhoneRepository struct {
	db *database.PostgresDB
}

func NewAllowedPhoneRepository(db *database.PostgresDB) *AllowedPhoneRepository {
	return &AllowedPhoneRepository{db: db}
}

// GetByPhone returns the allow-list entry for a normalized phone, or nil
func (r *AllowedPhoneRepository) GetByPhone(ctx context.Context, phone string) (*domain.AllowedPhone, error) {
	query := `
		SELECT id, phone, name, is_admin, created_at
		FROM allowed_phones
		WHERE phone = $1
	`

	var entry domain.AllowedPhone
	err := r.db.Pool.QueryRow(ctx, query, phone).Scan(
		&entry.ID, &entry.Phone, &entry.Name, &entry.IsAdmin, &entry.CreatedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get allowed phone: %w", err)
	}
	return &entry, nil
}

// List returns every allow-list entry ordered by name
func (r *AllowedPhoneRepository) List(ctx context.Context) ([]domain.AllowedPhone, error) {
	query := `
		SELECT id, phone, name, is_admin, created_at
		FROM allowed_phones
		ORDER BY name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowed phones: %w", err)
	}
	defer rows.Close()

	var entries []domain.AllowedPhone
	for rows.Next() {
		var entry domain.AllowedPhone
		if err := rows.Scan(&entry.ID, &entry.Phone, &entry.Name, &entry.IsAdmin, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan allowed phone: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Upsert allow-lists the phone, updating name and admin flag when the phone
// is already present.
func (r *AllowedPhoneRepository) Upsert(ctx context.Context, entry *domain.AllowedPhone) error {
	query := `
		INSERT INTO allowed_phones (id, phone, name, is_admin)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name, is_admin = EXCLUDED.is_admin
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query, entry.ID, entry.Phone, entry.Name, entry.IsAdmin).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert allowed phone: %w", err)
	}
	return nil
}
