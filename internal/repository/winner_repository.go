package repository

import (
	"context"
	"fmt"

	"lele-api/internal/domain"
	"lele-api/pkg/database"
)

type WinnerRepository struct {
	db *database.PostgresDB
}

func NewWinnerRepository(db *database.PostgresDB) *WinnerRepository {
	return &WinnerRepository{db: db}
}

// ArchiveAndReset records the year's winner and clears that year's votes
// in a single transaction. A nil winner skips the archive and only clears,
// which covers resetting a year that never received a vote.
func (r *WinnerRepository) ArchiveAndReset(ctx context.Context, winner *domain.Winner, year int) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if winner != nil {
		insert := `
			INSERT INTO winners (id, user_id, year, total_votes)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.Exec(ctx, insert, winner.ID, winner.UserID, winner.Year, winner.TotalVotes); err != nil {
			return fmt.Errorf("failed to archive winner: %w", err)
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM votes WHERE year = $1`, year); err != nil {
		return fmt.Errorf("failed to clear votes: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reset transaction: %w", err)
	}
	return nil
}

// List returns archived winners, most recent year first
func (r *WinnerRepository) List(ctx context.Context) ([]domain.Winner, error) {
	query := `
		SELECT id, user_id, year, total_votes, created_at
		FROM winners
		ORDER BY year DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list winners: %w", err)
	}
	defer rows.Close()

	var winners []domain.Winner
	for rows.Next() {
		var w domain.Winner
		if err := rows.Scan(&w.ID, &w.UserID, &w.Year, &w.TotalVotes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan winner: %w", err)
		}
		winners = append(winners, w)
	}
	return winners, rows.Err()
}
