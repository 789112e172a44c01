package repository

import (
	"context"
	"fmt"

	"lele-api/internal/domain"
	"lele-api/pkg/database"
)

type InviteRepository struct {
	db *database.PostgresDB
}

func NewInviteRepository(db *database.PostgresDB) *InviteRepository {
	return &InviteRepository{db: db}
}

// Create inserts a fresh unused code. Fails on a code collision, callers
// retry with a new code.
func (r *InviteRepository) Create(ctx context.Context, id, code string) (*domain.InviteCode, error) {
	query := `
		INSERT INTO invite_codes (id, code)
		VALUES ($1, $2)
		RETURNING created_at
	`

	invite := &domain.InviteCode{ID: id, Code: code}
	if err := r.db.Pool.QueryRow(ctx, query, id, code).Scan(&invite.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create invite code: %w", err)
	}
	return invite, nil
}

// GetByCode returns the invite or nil when the code does not exist
func (r *InviteRepository) GetByCode(ctx context.Context, code string) (*domain.InviteCode, error) {
	query := `
		SELECT id, code, used_by, created_at, used_at
		FROM invite_codes
		WHERE code = $1
	`

	var invite domain.InviteCode
	err := r.db.Pool.QueryRow(ctx, query, code).Scan(
		&invite.ID, &invite.Code, &invite.UsedBy, &invite.CreatedAt, &invite.UsedAt)
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite code: %w", err)
	}
	return &invite, nil
}

// ListUnused returns codes still available for redemption, newest first
func (r *InviteRepository) ListUnused(ctx context.Context) ([]domain.InviteCode, error) {
	query := `
		SELECT id, code, used_by, created_at, used_at
		FROM invite_codes
		WHERE used_by IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invite codes: %w", err)
	}
	defer rows.Close()

	var invites []domain.InviteCode
	for rows.Next() {
		var invite domain.InviteCode
		if err := rows.Scan(&invite.ID, &invite.Code, &invite.UsedBy, &invite.CreatedAt, &invite.UsedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite code: %w", err)
		}
		invites = append(invites, invite)
	}
	return invites, rows.Err()
}

// MarkUsed consumes the code for the given user. The WHERE clause makes the
// update conditional on the code still being unused, so concurrent redeemers
// cannot both win. Returns false when the code was already taken or missing.
func (r *InviteRepository) MarkUsed(ctx context.Context, code, userID string) (bool, error) {
	query := `
		UPDATE invite_codes
		SET used_by = $2, used_at = NOW()
		WHERE code = $1 AND used_by IS NULL
	`

	tag, err := r.db.Pool.Exec(ctx, query, code, userID)
	if err != nil {
		return false, fmt.Errorf("failed to redeem invite code: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
