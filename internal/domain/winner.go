package domain

import "time"

// Winner is the archive record created once per year reset for the
// candidate with the strictly greatest plain vote count.
type Winner struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Year       int       `json:"year"`
	TotalVotes int       `json:"totalVotes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ResetRequest represents an admin year-reset request. Year defaults to the
// current calendar year when zero.
type ResetRequest struct {
	Year int `json:"year,omitempty"`
}

// ResetResult reports the outcome of a year reset. Winner is nil when no
// votes were recorded for the year.
type ResetResult struct {
	Success bool           `json:"success"`
	Winner  *WinnerSummary `json:"winner"`
	Year    int            `json:"year"`
}

// WinnerSummary identifies the archived winner and its final count
type WinnerSummary struct {
	UserID    string `json:"userId"`
	VoteCount int    `json:"voteCount"`
}
