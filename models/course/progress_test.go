package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCompletion(t *testing.T) {
	tests := []struct {
		name        string
		completed   []uint
		moduleID    uint
		complete    bool
		want        []uint
		wantChanged bool
	}{
		{"add to empty", nil, 3, true, []uint{3}, true},
		{"add new", []uint{1, 2}, 3, true, []uint{1, 2, 3}, true},
		{"add already present is noop", []uint{1, 2}, 2, true, []uint{1, 2}, false},
		{"remove present", []uint{1, 2, 3}, 2, false, []uint{1, 3}, true},
		{"remove absent is noop", []uint{1, 3}, 2, false, []uint{1, 3}, false},
		{"remove from empty is noop", nil, 2, false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, changed := ApplyCompletion(tt.completed, tt.moduleID, tt.complete)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestApplyCompletionIdempotent(t *testing.T) {
	next, changed := ApplyCompletion([]uint{1}, 2, true)
	assert.True(t, changed)

	again, changed := ApplyCompletion(next, 2, true)
	assert.False(t, changed)
	assert.Equal(t, next, again)
}

func TestCompletedCount(t *testing.T) {
	tests := []struct {
		name      string
		moduleIDs []uint
		completed []uint
		want      int
	}{
		{"all counted", []uint{1, 2}, []uint{1, 2}, 2},
		{"partial", []uint{1, 2, 3}, []uint{2}, 1},
		{"stale ids of removed modules ignored", []uint{1, 2}, []uint{1, 2, 99}, 2},
		{"only stale ids", []uint{1}, []uint{99}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletedCount(tt.moduleIDs, tt.completed))
		})
	}
}

func TestIsCourseComplete(t *testing.T) {
	tests := []struct {
		name      string
		moduleIDs []uint
		completed []uint
		want      bool
	}{
		{"all complete", []uint{1, 2}, []uint{2, 1}, true},
		{"partial", []uint{1, 2}, []uint{1}, false},
		{"stale extra ids ignored", []uint{1, 2}, []uint{1, 2, 99}, true},
		{"zero modules never complete", nil, []uint{1}, false},
		{"nothing completed", []uint{1}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCourseComplete(tt.moduleIDs, tt.completed))
		})
	}
}
