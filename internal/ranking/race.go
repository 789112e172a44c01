package ranking

import (
	"sort"
	"time"

	"lele-api/internal/domain"
)

// RaceSize is how many candidates the leaderboard race tracks.
const RaceSize = 8

// Race reconstructs the cumulative score series of the top candidates from
// the year's vote log. One point is emitted per vote event, plus a
// synthetic all-zero point one second before the first vote so the chart
// starts at the origin. Every tracked candidate carries its running total
// forward on every point, so the per-candidate series is non-decreasing
// and ends at the candidate's final weighted total.
func Race(profiles []domain.Profile, votes []domain.Vote, year int, policy ScoringPolicy) ([]domain.RacePoint, []string) {
	byID := indexProfiles(profiles)

	log := make([]domain.Vote, 0, len(votes))
	for i := range votes {
		if votes[i].Year == year {
			log = append(log, votes[i])
		}
	}
	if len(log) == 0 {
		return []domain.RacePoint{}, []string{}
	}
	sort.SliceStable(log, func(i, j int) bool {
		return log[i].CreatedAt.Before(log[j].CreatedAt)
	})

	candidates := TopCandidates(profiles, log, year, RaceSize, policy)
	tracked := make(map[string]bool, len(candidates))
	for _, name := range candidates {
		tracked[name] = true
	}

	running := make(map[string]int, len(candidates))
	snapshot := func(ts time.Time) domain.RacePoint {
		totals := make(map[string]int, len(candidates))
		for _, name := range candidates {
			totals[name] = running[name]
		}
		return domain.RacePoint{Timestamp: ts.UnixMilli(), Totals: totals}
	}

	points := make([]domain.RacePoint, 0, len(log)+1)
	points = append(points, snapshot(log[0].CreatedAt.Add(-time.Second)))

	for i := range log {
		v := &log[i]
		name := nameOf(byID, v.CandidateID)
		if tracked[name] {
			running[name] += policy.Weight(v)
		}
		points = append(points, snapshot(v.CreatedAt))
	}

	return points, candidates
}
