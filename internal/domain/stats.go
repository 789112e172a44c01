package domain

import (
	"encoding/json"
	"time"
)

// LeaderboardEntry is one row of the ranked leaderboard. VoteCount is the
// weighted score under the active scoring policy.
type LeaderboardEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	VoteCount int     `json:"voteCount"`
}

// NamedCount pairs a participant name with a vote total, used by the pie,
// hot-streak and top-voters charts.
type NamedCount struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

// DayActivity is the weighted vote total for one day of the week
type DayActivity struct {
	Day   string `json:"day"`
	Votes int    `json:"votes"`
}

// MatrixCell is one (voter, candidate) cell of the who-votes-for-who
// heatmap. Pairs with zero votes are omitted; the renderer densifies.
type MatrixCell struct {
	Voter     string `json:"voter"`
	Candidate string `json:"candidate"`
	Count     int    `json:"count"`
}

// SeriesRow is one date bucket of the votes-over-time chart. It marshals
// flat, candidate names as keys, so the chart library can consume it
// directly: {"date":"2025-06-01","Alice":5,"Bob":0}.
type SeriesRow struct {
	Date   string
	Counts map[string]int
}

func (r SeriesRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(r.Counts)+1)
	flat["date"] = r.Date
	for name, n := range r.Counts {
		flat[name] = n
	}
	return json.Marshal(flat)
}

// RacePoint is one event of the cumulative leaderboard race. Totals holds
// the running score of every tracked candidate as of Timestamp
// (milliseconds since epoch). Marshals flat like SeriesRow.
type RacePoint struct {
	Timestamp int64
	Totals    map[string]int
}

func (p RacePoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(p.Totals)+1)
	flat["timestamp"] = p.Timestamp
	for name, n := range p.Totals {
		flat[name] = n
	}
	return json.Marshal(flat)
}

// StatsBundle is the full aggregate payload behind GET /stats
type StatsBundle struct {
	VoteDistribution          []NamedCount  `json:"voteDistribution"`
	VotesOverTime             []SeriesRow   `json:"votesOverTime"`
	TopVoters                 []NamedCount  `json:"topVoters"`
	WhoVotesForWho            []MatrixCell  `json:"whoVotesForWho"`
	DailyActivity             []DayActivity `json:"dailyActivity"`
	HotStreak                 []NamedCount  `json:"hotStreak"`
	Top5Candidates            []string      `json:"top5Candidates"`
	LeaderboardRace           []RacePoint   `json:"leaderboardRace"`
	LeaderboardRaceCandidates []string      `json:"leaderboardRaceCandidates"`
}

// ParticipantStats are the headline counters of a participant page
type ParticipantStats struct {
	VotesReceived     int `json:"votesReceived"`
	VotesGiven        int `json:"votesGiven"`
	VotesThisWeek     int `json:"votesThisWeek"`
	Rank              int `json:"rank"`
	TotalParticipants int `json:"totalParticipants"`
	CommentsReceived  int `json:"commentsReceived"`
}

// RivalEntry is one row of the top-haters / top-targets lists. Count is a
// raw (unweighted) vote count.
type RivalEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
	Count     int     `json:"count"`
}

// MutualRival is a participant with votes flowing in both directions
type MutualRival struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	AvatarURL     *string `json:"avatarUrl"`
	VotesGiven    int     `json:"votesGiven"`
	VotesReceived int     `json:"votesReceived"`
	Total         int     `json:"total"`
}

// ActivityItem is one entry of a participant's recent activity, tagged
// relative to the subject.
type ActivityItem struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Comment   *string    `json:"comment"`
	Type      string     `json:"type"` // "given" or "received"
	Voter     ProfileRef `json:"voter"`
	Candidate ProfileRef `json:"candidate"`
}

// FunStats carries the descriptive extras of a participant page
type FunStats struct {
	MostActiveDay *string `json:"mostActiveDay"`
}

// ParticipantBundle is the full payload behind GET /participant/{id}
type ParticipantBundle struct {
	Profile         ProfileRef       `json:"profile"`
	Stats           ParticipantStats `json:"stats"`
	TopHaters       []RivalEntry     `json:"topHaters"`
	TopTargets      []RivalEntry     `json:"topTargets"`
	RecentActivity  []ActivityItem   `json:"recentActivity"`
	MutualRivalries []MutualRival    `json:"mutualRivalries"`
	FunStats        FunStats         `json:"funStats"`
}
