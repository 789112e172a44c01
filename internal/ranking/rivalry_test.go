package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lele-api/internal/domain"
)

func TestTopHatersUsesRawCounts(t *testing.T) {
	profiles := []domain.Profile{profile("s", "Subject"), profile("a", "Alice"), profile("b", "Bob")}
	votes := []domain.Vote{
		vote("a", "s", 2025, baseTime, "long justification"), // weighted 5, counted 1
		vote("b", "s", 2025, baseTime, ""),
		vote("b", "s", 2025, baseTime.Add(time.Minute), ""),
		vote("a", "b", 2025, baseTime, ""), // not against subject
	}

	haters := TopHaters(profiles, votes, "s", 2025)

	require.Len(t, haters, 2)
	assert.Equal(t, "Bob", haters[0].Name)
	assert.Equal(t, 2, haters[0].Count)
	assert.Equal(t, "Alice", haters[1].Name)
	assert.Equal(t, 1, haters[1].Count, "comments do not weigh here")
}

func TestTopTargets(t *testing.T) {
	profiles := []domain.Profile{profile("s", "Subject"), profile("a", "Alice"), profile("b", "Bob")}
	votes := []domain.Vote{
		vote("s", "a", 2025, baseTime, ""),
		vote("s", "a", 2025, baseTime.Add(time.Minute), ""),
		vote("s", "b", 2025, baseTime, "meh"),
		vote("a", "s", 2025, baseTime, ""),
	}

	targets := TopTargets(profiles, votes, "s", 2025)

	require.Len(t, targets, 2)
	assert.Equal(t, "Alice", targets[0].Name)
	assert.Equal(t, 2, targets[0].Count)
	assert.Equal(t, "Bob", targets[1].Name)
	assert.Equal(t, 1, targets[1].Count)
}

func TestMutualRivalries(t *testing.T) {
	profiles := []domain.Profile{
		profile("s", "Subject"), profile("a", "Alice"), profile("b", "Bob"), profile("c", "Carol"),
	}
	votes := []domain.Vote{
		// Alice: 2 given by subject, 1 received from Alice -> mutual, total 3
		vote("s", "a", 2025, baseTime, ""),
		vote("s", "a", 2025, baseTime, ""),
		vote("a", "s", 2025, baseTime, ""),
		// Bob: only receives from subject -> not mutual
		vote("s", "b", 2025, baseTime, ""),
		// Carol: heavy mutual, total 4
		vote("s", "c", 2025, baseTime, ""),
		vote("c", "s", 2025, baseTime, ""),
		vote("c", "s", 2025, baseTime, ""),
		vote("c", "s", 2025, baseTime, ""),
	}

	rivals := MutualRivalries(profiles, votes, "s", 2025)

	require.Len(t, rivals, 2)
	assert.Equal(t, "Carol", rivals[0].Name)
	assert.Equal(t, 4, rivals[0].Total)
	assert.Equal(t, 1, rivals[0].VotesGiven)
	assert.Equal(t, 3, rivals[0].VotesReceived)
	assert.Equal(t, "Alice", rivals[1].Name)
}

func TestMostActiveDay(t *testing.T) {
	sunday := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	tuesday := sunday.Add(2 * 24 * time.Hour)
	votes := []domain.Vote{
		vote("s", "a", 2025, sunday, ""),
		vote("a", "s", 2025, tuesday, ""),
		vote("s", "a", 2025, tuesday.Add(time.Hour), ""),
	}

	day := MostActiveDay(votes, "s", 2025, time.UTC)
	require.NotNil(t, day)
	assert.Equal(t, "Terca", *day)
}

func TestMostActiveDayTieTakesEarlierDay(t *testing.T) {
	sunday := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)
	monday := sunday.Add(24 * time.Hour)
	votes := []domain.Vote{
		vote("s", "a", 2025, monday, ""),
		vote("a", "s", 2025, sunday, ""),
	}

	day := MostActiveDay(votes, "s", 2025, time.UTC)
	require.NotNil(t, day)
	assert.Equal(t, "Domingo", *day)
}

func TestMostActiveDayNoEvents(t *testing.T) {
	votes := []domain.Vote{vote("a", "b", 2025, baseTime, "")}
	assert.Nil(t, MostActiveDay(votes, "s", 2025, time.UTC))
}

func TestRecentActivity(t *testing.T) {
	profiles := []domain.Profile{profile("s", "Subject"), profile("a", "Alice")}
	votes := []domain.Vote{
		vote("s", "a", 2025, baseTime, ""),
		vote("a", "s", 2025, baseTime.Add(time.Minute), "take this"),
		vote("a", "a", 2025, baseTime.Add(2*time.Minute), ""), // unrelated to subject
	}

	items := RecentActivity(profiles, votes, "s", 2025, 20)

	require.Len(t, items, 2)
	assert.Equal(t, "received", items[0].Type, "newest first")
	assert.Equal(t, "Alice", items[0].Voter.Name)
	assert.Equal(t, "given", items[1].Type)
	assert.Equal(t, "Alice", items[1].Candidate.Name)
}

func TestRecentActivityLimit(t *testing.T) {
	profiles := []domain.Profile{profile("s", "Subject"), profile("a", "Alice")}
	votes := make([]domain.Vote, 0, 25)
	for i := 0; i < 25; i++ {
		votes = append(votes, vote("a", "s", 2025, baseTime.Add(time.Duration(i)*time.Minute), ""))
	}

	items := RecentActivity(profiles, votes, "s", 2025, 20)

	require.Len(t, items, 20)
	assert.True(t, items[0].CreatedAt.After(items[19].CreatedAt))
}
