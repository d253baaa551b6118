package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOWeekNumber(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-01", 1},  // Thursday
		{"2026-08-30", 35}, // Sunday of week 35
		{"2026-12-28", 53}, // Monday of the last ISO week of 2026
		{"2021-01-01", 53}, // Friday, belongs to 2020's week 53
		{"2024-12-30", 1},  // Monday, belongs to 2025's week 1
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ISOWeekNumber(d))
		})
	}
}

func TestISOWeekNumberAcrossDST(t *testing.T) {
	oslo, err := time.LoadLocation("Europe/Oslo")
	require.NoError(t, err)

	// A Thursday shortly after the spring-forward transition.
	assert.Equal(t, 14, ISOWeekNumber(time.Date(2026, time.April, 2, 0, 0, 0, 0, oslo)))

	// Agrees with the standard library for every day of the year, both DST
	// transitions included.
	start := time.Date(2026, time.January, 1, 12, 0, 0, 0, oslo)
	for day := 0; day < 365; day++ {
		d := start.AddDate(0, 0, day)
		_, want := d.ISOWeek()
		assert.Equal(t, want, ISOWeekNumber(d), d.Format("2006-01-02"))
	}
}

func TestWeekWindows(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC) // Sunday, week 35

	windows := WeekWindows(now, 8)
	require.Len(t, windows, 8)

	// Last window is the current week, Monday-aligned.
	last := windows[7]
	assert.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC), last.Start)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), last.End)
	assert.Equal(t, "Week 35", last.Label)

	// Windows are consecutive and oldest-first.
	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1].End, windows[i].Start)
	}
	assert.Equal(t, "Week 28", windows[0].Label)
}

func TestWeekWindowsYearBoundaryLabels(t *testing.T) {
	now := time.Date(2026, time.January, 7, 9, 0, 0, 0, time.UTC) // Wednesday, week 2

	windows := WeekWindows(now, 4)
	require.Len(t, windows, 4)

	// Weeks from the previous ISO year carry the year suffix.
	assert.Equal(t, "Week 51 2025", windows[0].Label)
	assert.Equal(t, "Week 52 2025", windows[1].Label)
	assert.Equal(t, "Week 1", windows[2].Label)
	assert.Equal(t, "Week 2", windows[3].Label)
}

func TestBucketIndex(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	windows := WeekWindows(now, 8)

	assert.Equal(t, 7, BucketIndex(windows, now))
	assert.Equal(t, 7, BucketIndex(windows, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 6, BucketIndex(windows, time.Date(2026, time.August, 23, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, -1, BucketIndex(windows, now.AddDate(0, -6, 0)))
	assert.Equal(t, -1, BucketIndex(windows, windows[7].End))
}
