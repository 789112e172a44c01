package ranking

import (
	"sort"

	"lele-api/internal/domain"
)

// Leaderboard computes the ranked score of every profile for the given
// year. Every profile appears, zero-score ones included. Ordering is score
// descending with ties broken by name ascending (case-sensitive, as
// stored).
func Leaderboard(profiles []domain.Profile, votes []domain.Vote, year int, policy ScoringPolicy) []domain.LeaderboardEntry {
	totals := make(map[string]int, len(profiles))
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		totals[v.CandidateID] += policy.Weight(v)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		entries = append(entries, domain.LeaderboardEntry{
			ID:        p.ID,
			Name:      p.Name,
			AvatarURL: p.AvatarURL,
			VoteCount: totals[p.ID],
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].VoteCount != entries[j].VoteCount {
			return entries[i].VoteCount > entries[j].VoteCount
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// RankOf returns the 1-based position of id in the ordering and the total
// number of participants. Rank is 0 when id is not present.
func RankOf(entries []domain.LeaderboardEntry, id string) (rank, total int) {
	total = len(entries)
	for i := range entries {
		if entries[i].ID == id {
			return i + 1, total
		}
	}
	return 0, total
}
