package ranking

import (
	"sort"
	"time"

	"lele-api/internal/domain"
)

// Day labels for the daily activity chart, Sunday first.
var dayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sab"}

func indexProfiles(profiles []domain.Profile) map[string]*domain.Profile {
	byID := make(map[string]*domain.Profile, len(profiles))
	for i := range profiles {
		byID[profiles[i].ID] = &profiles[i]
	}
	return byID
}

func nameOf(byID map[string]*domain.Profile, id string) string {
	if p, ok := byID[id]; ok {
		return p.Name
	}
	return "Unknown"
}

// sortNamedCounts orders by votes descending, name ascending on ties.
func sortNamedCounts(counts []domain.NamedCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Votes != counts[j].Votes {
			return counts[i].Votes > counts[j].Votes
		}
		return counts[i].Name < counts[j].Name
	})
}

func namedCounts(byID map[string]*domain.Profile, totals map[string]int) []domain.NamedCount {
	counts := make([]domain.NamedCount, 0, len(totals))
	for id, n := range totals {
		counts = append(counts, domain.NamedCount{Name: nameOf(byID, id), Votes: n})
	}
	sortNamedCounts(counts)
	return counts
}

// VotesThisWeek sums the weights a candidate received within the trailing
// seven days.
func VotesThisWeek(votes []domain.Vote, candidateID string, year int, now time.Time, policy ScoringPolicy) int {
	cutoff := now.Add(-7 * 24 * time.Hour)
	sum := 0
	for i := range votes {
		v := &votes[i]
		if v.Year != year || v.CandidateID != candidateID {
			continue
		}
		if v.CreatedAt.Before(cutoff) {
			continue
		}
		sum += policy.Weight(v)
	}
	return sum
}

// HotStreak returns the top five candidates by weight received within the
// trailing seven days.
func HotStreak(profiles []domain.Profile, votes []domain.Vote, year int, now time.Time, policy ScoringPolicy) []domain.NamedCount {
	byID := indexProfiles(profiles)
	cutoff := now.Add(-7 * 24 * time.Hour)
	totals := make(map[string]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year || v.CreatedAt.Before(cutoff) {
			continue
		}
		totals[v.CandidateID] += policy.Weight(v)
	}
	counts := namedCounts(byID, totals)
	if len(counts) > 5 {
		counts = counts[:5]
	}
	return counts
}

// VoteDistribution returns the top six candidates by weight received, for
// the pie chart.
func VoteDistribution(profiles []domain.Profile, votes []domain.Vote, year int, policy ScoringPolicy) []domain.NamedCount {
	byID := indexProfiles(profiles)
	totals := make(map[string]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		totals[v.CandidateID] += policy.Weight(v)
	}
	counts := namedCounts(byID, totals)
	if len(counts) > 6 {
		counts = counts[:6]
	}
	return counts
}

// TopCandidates returns the names of the n candidates with the highest
// weighted totals for the year, ordered by total descending.
func TopCandidates(profiles []domain.Profile, votes []domain.Vote, year, n int, policy ScoringPolicy) []string {
	byID := indexProfiles(profiles)
	totals := make(map[string]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		totals[v.CandidateID] += policy.Weight(v)
	}
	counts := namedCounts(byID, totals)
	if len(counts) > n {
		counts = counts[:n]
	}
	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Name
	}
	return names
}

// VotesOverTime buckets the trailing 30 days by UTC calendar date for the
// top five all-time candidates. Only dates that saw at least one vote
// produce a row; tracked candidates without activity on such a date report
// zero. Returns the rows and the tracked candidate names.
func VotesOverTime(profiles []domain.Profile, votes []domain.Vote, year int, now time.Time, policy ScoringPolicy) ([]domain.SeriesRow, []string) {
	byID := indexProfiles(profiles)
	top5 := TopCandidates(profiles, votes, year, 5, policy)
	tracked := make(map[string]bool, len(top5))
	for _, name := range top5 {
		tracked[name] = true
	}

	cutoff := now.Add(-30 * 24 * time.Hour)
	perDate := make(map[string]map[string]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year || v.CreatedAt.Before(cutoff) {
			continue
		}
		date := v.CreatedAt.UTC().Format("2006-01-02")
		if perDate[date] == nil {
			perDate[date] = make(map[string]int)
		}
		name := nameOf(byID, v.CandidateID)
		if tracked[name] {
			perDate[date][name] += policy.Weight(v)
		}
	}

	dates := make([]string, 0, len(perDate))
	for date := range perDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]domain.SeriesRow, 0, len(dates))
	for _, date := range dates {
		counts := make(map[string]int, len(top5))
		for _, name := range top5 {
			counts[name] = perDate[date][name]
		}
		rows = append(rows, domain.SeriesRow{Date: date, Counts: counts})
	}
	return rows, top5
}

// DailyActivity sums weights per day of week, Sunday through Saturday, in
// the given location.
func DailyActivity(votes []domain.Vote, year int, loc *time.Location, policy ScoringPolicy) []domain.DayActivity {
	var perDay [7]int
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		perDay[int(v.CreatedAt.In(loc).Weekday())] += policy.Weight(v)
	}
	activity := make([]domain.DayActivity, 7)
	for i := 0; i < 7; i++ {
		activity[i] = domain.DayActivity{Day: dayLabels[i], Votes: perDay[i]}
	}
	return activity
}

// TopVoters returns the ten most active voters by weight of votes cast.
func TopVoters(profiles []domain.Profile, votes []domain.Vote, year int, policy ScoringPolicy) []domain.NamedCount {
	byID := indexProfiles(profiles)
	totals := make(map[string]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		totals[v.VoterID] += policy.Weight(v)
	}
	counts := namedCounts(byID, totals)
	if len(counts) > 10 {
		counts = counts[:10]
	}
	return counts
}

// VoteMatrix returns the weighted count for every (voter, candidate) pair
// with at least one vote, ordered by voter then candidate name.
func VoteMatrix(profiles []domain.Profile, votes []domain.Vote, year int, policy ScoringPolicy) []domain.MatrixCell {
	byID := indexProfiles(profiles)
	type pair struct{ voter, candidate string }
	totals := make(map[pair]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		key := pair{nameOf(byID, v.VoterID), nameOf(byID, v.CandidateID)}
		totals[key] += policy.Weight(v)
	}
	cells := make([]domain.MatrixCell, 0, len(totals))
	for key, n := range totals {
		cells = append(cells, domain.MatrixCell{Voter: key.voter, Candidate: key.candidate, Count: n})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Voter != cells[j].Voter {
			return cells[i].Voter < cells[j].Voter
		}
		return cells[i].Candidate < cells[j].Candidate
	})
	return cells
}
