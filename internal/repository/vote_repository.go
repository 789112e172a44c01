package repository

import (
	"context"
	"fmt"

	"lele-api/internal/domain"
	"lele-api/pkg/database"
)

type VoteRepository struct {
	db *database.PostgresDB
}

func NewVoteRepository(db *database.PostgresDB) *VoteRepository {
	return &VoteRepository{db: db}
}

// Create inserts the vote and fills in its server-side timestamp
func (r *VoteRepository) Create(ctx context.Context, v *domain.Vote) error {
	query := `
		INSERT INTO votes (id, voter_id, candidate_id, comment, year)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query, v.ID, v.VoterID, v.CandidateID, v.Comment, v.Year).Scan(&v.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vote: %w", err)
	}
	return nil
}

// ListByYear returns every vote of the given year, oldest first
func (r *VoteRepository) ListByYear(ctx context.Context, year int) ([]domain.Vote, error) {
	query := `
		SELECT id, voter_id, candidate_id, comment, year, created_at
		FROM votes
		WHERE year = $1
		ORDER BY created_at
	`

	rows, err := r.db.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list votes: %w", err)
	}
	defer rows.Close()

	var votes []domain.Vote
	for rows.Next() {
		var v domain.Vote
		if err := rows.Scan(&v.ID, &v.VoterID, &v.CandidateID, &v.Comment, &v.Year, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

// ListFeed returns the newest votes of the year with voter and candidate
// names resolved, limited to the given page size.
func (r *VoteRepository) ListFeed(ctx context.Context, year, limit int) ([]domain.FeedItem, error) {
	query := `
		SELECT v.id, v.comment, v.created_at,
		       voter.id, voter.name, voter.avatar_url,
		       candidate.id, candidate.name, candidate.avatar_url
		FROM votes v
		JOIN profiles voter ON voter.id = v.voter_id
		JOIN profiles candidate ON candidate.id = v.candidate_id
		WHERE v.year = $1
		ORDER BY v.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, year, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list vote feed: %w", err)
	}
	defer rows.Close()

	items := make([]domain.FeedItem, 0, limit)
	for rows.Next() {
		var item domain.FeedItem
		err := rows.Scan(&item.ID, &item.Comment, &item.CreatedAt,
			&item.Voter.ID, &item.Voter.Name, &item.Voter.AvatarURL,
			&item.Candidate.ID, &item.Candidate.Name, &item.Candidate.AvatarURL)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
