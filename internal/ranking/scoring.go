package ranking

import "lele-api/internal/domain"

// ScoringPolicy assigns a point weight to a single vote. Two policies
// coexist on purpose: most aggregates reward justified votes, while the
// hater/target lists and the year reset count plainly.
type ScoringPolicy interface {
	Weight(v *domain.Vote) int
	Name() string
}

// CommentBonus weighs a vote with a non-empty justification at 5 points
// and a plain vote at 1.
type CommentBonus struct{}

func (CommentBonus) Weight(v *domain.Vote) int {
	if v.HasComment() {
		return 5
	}
	return 1
}

func (CommentBonus) Name() string { return "comment-bonus" }

// PlainCount weighs every vote at 1 point.
type PlainCount struct{}

func (PlainCount) Weight(v *domain.Vote) int { return 1 }

func (PlainCount) Name() string { return "plain" }

// PolicyFromName resolves a configured scoring mode. Unknown values fall
// back to the comment-bonus policy.
func PolicyFromName(name string) ScoringPolicy {
	if name == "plain" {
		return PlainCount{}
	}
	return CommentBonus{}
}
