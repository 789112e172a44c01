package handler

import (
	"strings"
	"testing"

	"lele-api/internal/domain"
)

func TestValidateVoteRequest(t *testing.T) {
	h := &VoteHandler{}

	tests := []struct {
		name    string
		req     *domain.VoteRequest
		wantErr bool
	}{
		{
			name: "valid without comment",
			req:  &domain.VoteRequest{CandidateID: "c1"},
		},
		{
			name: "valid with comment",
			req:  &domain.VoteRequest{CandidateID: "c1", Comment: "comeu o bolo inteiro"},
		},
		{
			name:    "missing candidate",
			req:     &domain.VoteRequest{Comment: "sem alvo"},
			wantErr: true,
		},
		{
			name: "comment at limit",
			req:  &domain.VoteRequest{CandidateID: "c1", Comment: strings.Repeat("a", 500)},
		},
		{
			name:    "comment over limit",
			req:     &domain.VoteRequest{CandidateID: "c1", Comment: strings.Repeat("a", 501)},
			wantErr: true,
		},
		{
			// 500 characters but 1000 bytes, must still be accepted
			name: "accented comment at limit",
			req:  &domain.VoteRequest{CandidateID: "c1", Comment: strings.Repeat("é", 500)},
		},
		{
			name:    "accented comment over limit",
			req:     &domain.VoteRequest{CandidateID: "c1", Comment: strings.Repeat("é", 501)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.validateVoteRequest(tt.req)
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
