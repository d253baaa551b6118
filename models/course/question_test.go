package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleQuestion() Question {
	return Question{
		ID: "q1",
		Alternatives: []Alternative{
			{ID: "a", Label: map[string]string{"no": "Alternativ A"}},
			{ID: "b", Label: map[string]string{"no": "Alternativ B"}},
			{ID: "c", Label: map[string]string{"no": "Alternativ C"}},
		},
	}
}

func TestNormalizedCorrectIDs(t *testing.T) {
	tests := []struct {
		name   string
		newIDs []string
		legacy string
		want   []string
	}{
		{"valid new set", []string{"b", "c"}, "", []string{"b", "c"}},
		{"new set wins over legacy", []string{"c"}, "a", []string{"c"}},
		{"invalid new set falls to legacy", []string{"b", "x"}, "b", []string{"b"}},
		{"invalid new set invalid legacy", []string{"x"}, "y", []string{"a"}},
		{"legacy only", nil, "c", []string{"c"}},
		{"nothing set defaults to first alternative", nil, "", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := sampleQuestion()
			q.CorrectAnswerIDs = tt.newIDs
			q.CorrectAnswerID = tt.legacy
			assert.Equal(t, tt.want, q.NormalizedCorrectIDs())
		})
	}
}

func TestNormalizedCorrectIDsNoAlternatives(t *testing.T) {
	q := Question{ID: "q1", CorrectAnswerIDs: []string{"a"}}
	assert.Nil(t, q.NormalizedCorrectIDs())
}

func TestIsCorrect(t *testing.T) {
	q := sampleQuestion()
	q.CorrectAnswerIDs = []string{"b"}

	assert.True(t, q.IsCorrect("b"))
	assert.False(t, q.IsCorrect("a"))
	assert.False(t, q.IsCorrect(""))
}
