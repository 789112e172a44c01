package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lele-api/internal/domain"
)

func TestCommentBonusWeight(t *testing.T) {
	comment := "justificativa"
	empty := ""

	tests := []struct {
		name string
		vote domain.Vote
		want int
	}{
		{"no comment", domain.Vote{}, 1},
		{"empty comment", domain.Vote{Comment: &empty}, 1},
		{"with comment", domain.Vote{Comment: &comment}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommentBonus{}.Weight(&tt.vote))
			// Weighing twice yields the same result
			assert.Equal(t, tt.want, CommentBonus{}.Weight(&tt.vote))
		})
	}
}

func TestPlainCountWeight(t *testing.T) {
	comment := "does not matter"
	assert.Equal(t, 1, PlainCount{}.Weight(&domain.Vote{Comment: &comment}))
	assert.Equal(t, 1, PlainCount{}.Weight(&domain.Vote{}))
}

func TestPolicyFromName(t *testing.T) {
	assert.Equal(t, "plain", PolicyFromName("plain").Name())
	assert.Equal(t, "comment-bonus", PolicyFromName("weighted").Name())
	assert.Equal(t, "comment-bonus", PolicyFromName("").Name())
}
