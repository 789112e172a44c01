package ranking

import "lele-api/internal/domain"

// YearWinner picks the year's winner: the head of the plain-count ordering,
// provided it actually received a vote. Comment weighting is deliberately
// ignored here, so the archived total can differ from the live leaderboard
// head. Returns ok=false when the year has no votes at all.
func YearWinner(profiles []domain.Profile, votes []domain.Vote, year int) (domain.WinnerSummary, bool) {
	board := Leaderboard(profiles, votes, year, PlainCount{})
	if len(board) == 0 || board[0].VoteCount == 0 {
		return domain.WinnerSummary{}, false
	}
	return domain.WinnerSummary{UserID: board[0].ID, VoteCount: board[0].VoteCount}, true
}
