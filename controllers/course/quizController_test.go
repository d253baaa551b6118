package controllers

import (
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quizQuestions() []courseModels.Question {
	build := func(id, correct string) courseModels.Question {
		return courseModels.Question{
			ID: id,
			Alternatives: []courseModels.Alternative{
				{ID: "a", Label: map[string]string{"no": "A"}},
				{ID: "b", Label: map[string]string{"no": "B"}},
			},
			CorrectAnswerIDs: []string{correct},
		}
	}
	return []courseModels.Question{
		build("q1", "a"),
		build("q2", "b"),
		build("q3", "a"),
		build("q4", "b"),
	}
}

func TestScoreQuizAllCorrect(t *testing.T) {
	result := ScoreQuiz(quizQuestions(), map[string]string{
		"q1": "a", "q2": "b", "q3": "a", "q4": "b",
	})

	assert.Equal(t, 4, result.CorrectCount)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
	assert.Empty(t, result.IncorrectIDs)
}

func TestScoreQuizPartiallyCorrect(t *testing.T) {
	result := ScoreQuiz(quizQuestions(), map[string]string{
		"q1": "a", "q2": "b", "q3": "a", "q4": "a",
	})

	assert.Equal(t, 3, result.CorrectCount)
	assert.Equal(t, 75, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, []string{"q4"}, result.IncorrectIDs)
}

func TestScoreQuizRounding(t *testing.T) {
	questions := quizQuestions()[:3]
	result := ScoreQuiz(questions, map[string]string{
		"q1": "a", "q2": "b", "q3": "b",
	})

	// 2 of 3 rounds to 67
	assert.Equal(t, 67, result.Score)
	assert.False(t, result.Passed)
}

func TestScoreQuizEmpty(t *testing.T) {
	result := ScoreQuiz(nil, nil)

	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, 0, result.TotalQuestions)
}
