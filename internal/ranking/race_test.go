package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lele-api/internal/domain"
)

func TestRaceEmptyLog(t *testing.T) {
	points, candidates := Race([]domain.Profile{profile("a", "Alice")}, nil, 2025, CommentBonus{})
	assert.Empty(t, points)
	assert.Empty(t, candidates)
}

func TestRaceStartsAtZero(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice"), profile("b", "Bob")}
	first := baseTime
	votes := []domain.Vote{vote("a", "b", 2025, first, "")}

	points, candidates := Race(profiles, votes, 2025, CommentBonus{})

	require.Len(t, points, 2)
	assert.Equal(t, []string{"Bob"}, candidates)
	assert.Equal(t, first.Add(-time.Second).UnixMilli(), points[0].Timestamp)
	assert.Equal(t, 0, points[0].Totals["Bob"])
	assert.Equal(t, 1, points[1].Totals["Bob"])
}

func TestRaceCarriesTotalsForward(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice"), profile("b", "Bob"), profile("c", "Carol")}
	votes := []domain.Vote{
		vote("c", "a", 2025, baseTime, ""),
		vote("c", "b", 2025, baseTime.Add(time.Minute), "justified"),
		vote("c", "b", 2025, baseTime.Add(2*time.Minute), ""),
	}

	points, candidates := Race(profiles, votes, 2025, CommentBonus{})

	require.Len(t, points, 4)
	require.ElementsMatch(t, []string{"Alice", "Bob"}, candidates)

	// Alice's total carries forward unchanged while Bob scores
	assert.Equal(t, 1, points[1].Totals["Alice"])
	assert.Equal(t, 1, points[2].Totals["Alice"])
	assert.Equal(t, 1, points[3].Totals["Alice"])
	assert.Equal(t, 5, points[2].Totals["Bob"])
	assert.Equal(t, 6, points[3].Totals["Bob"])
}

func TestRaceMonotonicAndFinalTotals(t *testing.T) {
	profiles := []domain.Profile{
		profile("a", "Alice"), profile("b", "Bob"), profile("c", "Carol"), profile("d", "Dan"),
	}
	votes := []domain.Vote{
		vote("a", "b", 2025, baseTime, ""),
		vote("b", "c", 2025, baseTime.Add(1*time.Minute), "x"),
		vote("c", "b", 2025, baseTime.Add(2*time.Minute), ""),
		vote("d", "b", 2025, baseTime.Add(3*time.Minute), "y"),
		vote("a", "c", 2025, baseTime.Add(4*time.Minute), ""),
		vote("b", "d", 2025, baseTime.Add(5*time.Minute), ""),
	}

	points, candidates := Race(profiles, votes, 2025, CommentBonus{})
	require.NotEmpty(t, points)

	// Per-candidate series never decreases
	for _, name := range candidates {
		prev := 0
		for _, p := range points {
			cur, ok := p.Totals[name]
			require.True(t, ok, "every point carries every candidate")
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	}

	// Last point equals the true weighted totals
	final := points[len(points)-1].Totals
	entries := Leaderboard(profiles, votes, 2025, CommentBonus{})
	for _, e := range entries {
		if _, tracked := final[e.Name]; tracked {
			assert.Equal(t, e.VoteCount, final[e.Name], "final total for %s", e.Name)
		}
	}
}

func TestRaceIgnoresOtherYears(t *testing.T) {
	profiles := []domain.Profile{profile("a", "Alice"), profile("b", "Bob")}
	votes := []domain.Vote{
		vote("a", "b", 2024, baseTime.AddDate(-1, 0, 0), ""),
		vote("a", "b", 2025, baseTime, ""),
	}

	points, _ := Race(profiles, votes, 2025, CommentBonus{})
	require.Len(t, points, 2)
	assert.Equal(t, 1, points[1].Totals["Bob"])
}
