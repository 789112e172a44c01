package domain

import "time"

// MaxCommentLength is the upper bound for a vote justification.
const MaxCommentLength = 500

// Vote is one row of the append-only vote ledger. Votes are immutable once
// created; the only delete path is the yearly reset.
type Vote struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voterId"`
	CandidateID string    `json:"candidateId"`
	Comment     *string   `json:"comment"`
	Year        int       `json:"year"`
	CreatedAt   time.Time `json:"createdAt"`
}

// HasComment reports whether the vote carries a non-empty justification.
func (v *Vote) HasComment() bool {
	return v.Comment != nil && *v.Comment != ""
}

// VoteRequest represents a vote submission
type VoteRequest struct {
	CandidateID string `json:"candidateId"`
	Comment     string `json:"comment,omitempty"`
}

// VoteResponse is returned after a successful vote submission.
// PenaltyTriggered tells the client to show the rage-click modal.
type VoteResponse struct {
	Success          bool       `json:"success"`
	Vote             Vote       `json:"vote"`
	Voter            ProfileRef `json:"voter"`
	Candidate        ProfileRef `json:"candidate"`
	PenaltyTriggered bool       `json:"penaltyTriggered,omitempty"`
}

// FeedItem is one entry of the public vote feed
type FeedItem struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Comment   *string    `json:"comment,omitempty"`
	Voter     ProfileRef `json:"voter"`
	Candidate ProfileRef `json:"candidate"`
}
