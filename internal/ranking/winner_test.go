package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lele-api/internal/domain"
)

func TestYearWinnerArchivedOnPositiveCount(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice"), profile("b", "Bob")}
	votes := []domain.Vote{
		vote("b", "a", 2025, baseTime, ""),
		vote("b", "a", 2025, baseTime.Add(time.Minute), ""),
		vote("a", "b", 2025, baseTime.Add(2*time.Minute), ""),
	}

	winner, ok := YearWinner(profiles, votes, 2025)
	require.True(t, ok)
	assert.Equal(t, "a", winner.UserID)
	assert.Equal(t, 2, winner.VoteCount)
}

func TestYearWinnerNoVotesNoWinner(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice"), profile("b", "Bob")}

	_, ok := YearWinner(profiles, nil, 2025)
	assert.False(t, ok, "an empty year must not produce a winner")
}

func TestYearWinnerIgnoresOtherYears(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice")}
	votes := []domain.Vote{vote("a", "a", 2024, baseTime, "")}

	_, ok := YearWinner(profiles, votes, 2025)
	assert.False(t, ok)
}

func TestYearWinnerUsesPlainCountsNotWeights(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice"), profile("b", "Bob"), profile("c", "Caio")}
	votes := []domain.Vote{
		// One justified vote for Alice: weight 5, plain count 1
		vote("c", "a", 2025, baseTime, "roubou meu estacionamento"),
		// Two plain votes for Bob: weight 2, plain count 2
		vote("c", "b", 2025, baseTime.Add(time.Minute), ""),
		vote("a", "b", 2025, baseTime.Add(2*time.Minute), ""),
	}

	// The live leaderboard is led by Alice under comment weighting
	board := Leaderboard(profiles, votes, 2025, CommentBonus{})
	require.Equal(t, "a", board[0].ID)

	// The archived winner is Bob, by raw count
	winner, ok := YearWinner(profiles, votes, 2025)
	require.True(t, ok)
	assert.Equal(t, "b", winner.UserID)
	assert.Equal(t, 2, winner.VoteCount)
}

func TestYearWinnerTieBreaksByName(t *testing.T) {
	profiles := []domain.Profile{profile("b", "Bob"), profile("a", "Alice")}
	votes := []domain.Vote{
		vote("a", "b", 2025, baseTime, ""),
		vote("b", "a", 2025, baseTime.Add(time.Minute), ""),
	}

	winner, ok := YearWinner(profiles, votes, 2025)
	require.True(t, ok)
	assert.Equal(t, "a", winner.UserID, "equal counts resolve to the first name in order")
}
