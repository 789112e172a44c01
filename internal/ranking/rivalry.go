package ranking

import (
	"sort"
	"time"

	"lele-api/internal/domain"
)

// Full day names for the most-active-day stat, Sunday first.
var fullDayNames = [7]string{"Domingo", "Segunda", "Terca", "Quarta", "Quinta", "Sexta", "Sabado"}

// rivalList builds a ranked list from per-profile raw counts, keeping
// first-seen order on ties.
func rivalList(byID map[string]*domain.Profile, order []string, counts map[string]int, limit int) []domain.RivalEntry {
	entries := make([]domain.RivalEntry, 0, len(order))
	for _, id := range order {
		entry := domain.RivalEntry{ID: id, Name: nameOf(byID, id), Count: counts[id]}
		if p, ok := byID[id]; ok {
			entry.AvatarURL = p.AvatarURL
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// TopHaters lists the voters who voted for the subject the most this year.
// Raw vote counts on purpose, no comment weighting.
func TopHaters(profiles []domain.Profile, votes []domain.Vote, subjectID string, year int) []domain.RivalEntry {
	byID := indexProfiles(profiles)
	counts := make(map[string]int)
	var order []string
	for i := range votes {
		v := &votes[i]
		if v.Year != year || v.CandidateID != subjectID {
			continue
		}
		if _, seen := counts[v.VoterID]; !seen {
			order = append(order, v.VoterID)
		}
		counts[v.VoterID]++
	}
	return rivalList(byID, order, counts, 10)
}

// TopTargets lists the candidates the subject voted for the most this
// year. Raw counts, symmetric to TopHaters.
func TopTargets(profiles []domain.Profile, votes []domain.Vote, subjectID string, year int) []domain.RivalEntry {
	byID := indexProfiles(profiles)
	counts := make(map[string]int)
	var order []string
	for i := range votes {
		v := &votes[i]
		if v.Year != year || v.VoterID != subjectID {
			continue
		}
		if _, seen := counts[v.CandidateID]; !seen {
			order = append(order, v.CandidateID)
		}
		counts[v.CandidateID]++
	}
	return rivalList(byID, order, counts, 10)
}

// MutualRivalries finds participants with votes flowing in both directions
// between them and the subject, ranked by combined volume, top five.
func MutualRivalries(profiles []domain.Profile, votes []domain.Vote, subjectID string, year int) []domain.MutualRival {
	given := make(map[string]int)
	received := make(map[string]int)
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		if v.VoterID == subjectID {
			given[v.CandidateID]++
		}
		if v.CandidateID == subjectID {
			received[v.VoterID]++
		}
	}

	rivals := make([]domain.MutualRival, 0)
	for i := range profiles {
		p := &profiles[i]
		g, r := given[p.ID], received[p.ID]
		if g == 0 || r == 0 {
			continue
		}
		rivals = append(rivals, domain.MutualRival{
			ID:            p.ID,
			Name:          p.Name,
			AvatarURL:     p.AvatarURL,
			VotesGiven:    g,
			VotesReceived: r,
			Total:         g + r,
		})
	}
	sort.SliceStable(rivals, func(i, j int) bool {
		return rivals[i].Total > rivals[j].Total
	})
	if len(rivals) > 5 {
		rivals = rivals[:5]
	}
	return rivals
}

// MostActiveDay returns the localized name of the weekday with the most
// vote events involving the subject, given or received. Ties resolve to
// the earlier day, Sunday first. Nil when the subject has no events.
func MostActiveDay(votes []domain.Vote, subjectID string, year int, loc *time.Location) *string {
	var perDay [7]int
	any := false
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		if v.VoterID != subjectID && v.CandidateID != subjectID {
			continue
		}
		perDay[int(v.CreatedAt.In(loc).Weekday())]++
		any = true
	}
	if !any {
		return nil
	}
	best := 0
	for i := 1; i < 7; i++ {
		if perDay[i] > perDay[best] {
			best = i
		}
	}
	name := fullDayNames[best]
	return &name
}

// RecentActivity returns the subject's latest vote events, newest first,
// each tagged "given" or "received" relative to the subject.
func RecentActivity(profiles []domain.Profile, votes []domain.Vote, subjectID string, year, limit int) []domain.ActivityItem {
	byID := indexProfiles(profiles)
	involved := make([]domain.Vote, 0)
	for i := range votes {
		v := &votes[i]
		if v.Year != year {
			continue
		}
		if v.VoterID == subjectID || v.CandidateID == subjectID {
			involved = append(involved, *v)
		}
	}
	sort.SliceStable(involved, func(i, j int) bool {
		return involved[i].CreatedAt.After(involved[j].CreatedAt)
	})
	if len(involved) > limit {
		involved = involved[:limit]
	}

	ref := func(id string) domain.ProfileRef {
		if p, ok := byID[id]; ok {
			return p.Ref()
		}
		return domain.ProfileRef{ID: id, Name: "Unknown"}
	}

	items := make([]domain.ActivityItem, 0, len(involved))
	for i := range involved {
		v := &involved[i]
		kind := "received"
		if v.VoterID == subjectID {
			kind = "given"
		}
		items = append(items, domain.ActivityItem{
			ID:        v.ID,
			CreatedAt: v.CreatedAt,
			Comment:   v.Comment,
			Type:      kind,
			Voter:     ref(v.VoterID),
			Candidate: ref(v.CandidateID),
		})
	}
	return items
}
