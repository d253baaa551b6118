package utils

import (
	"fmt"
	"time"
)

// WeekWindow is one Monday-aligned [Start, End) dashboard bucket.
type WeekWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// mondayOf returns midnight of the Monday of t's week, Monday=0..Sunday=6.
func mondayOf(t time.Time) time.Time {
	day := (int(t.Weekday()) + 6) % 7
	t = t.AddDate(0, 0, -day)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ISOWeekNumber computes the ISO-8601 week number by shifting the date to the
// Thursday of its week and counting weeks from the year's first Thursday.
func ISOWeekNumber(t time.Time) int {
	day := (int(t.Weekday()) + 6) % 7
	thursday := t.AddDate(0, 0, 3-day)

	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	jan1Day := (int(jan1.Weekday()) + 6) % 7
	firstThursday := jan1
	if jan1Day <= 3 {
		firstThursday = jan1.AddDate(0, 0, 3-jan1Day)
	} else {
		firstThursday = jan1.AddDate(0, 0, 10-jan1Day)
	}

	// Both Thursdays fall in the same calendar year, so counting year days
	// keeps the division exact across DST transitions.
	return (thursday.YearDay()-firstThursday.YearDay())/7 + 1
}

// isoYear is the year the date's Thursday falls in, which is the week's ISO year.
func isoYear(t time.Time) int {
	day := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, 3-day).Year()
}

// WeekWindows builds count consecutive Monday-aligned week windows ending at
// the week containing now. Labels read "Week {n}", with the ISO year appended
// only when it differs from the current year.
func WeekWindows(now time.Time, count int) []WeekWindow {
	currentMonday := mondayOf(now)
	currentYear := now.Year()

	windows := make([]WeekWindow, 0, count)
	for i := count - 1; i >= 0; i-- {
		start := currentMonday.AddDate(0, 0, -7*i)
		label := fmt.Sprintf("Week %d", ISOWeekNumber(start))
		if year := isoYear(start); year != currentYear {
			label = fmt.Sprintf("%s %d", label, year)
		}
		windows = append(windows, WeekWindow{
			Start: start,
			End:   start.AddDate(0, 0, 7),
			Label: label,
		})
	}
	return windows
}

// BucketIndex finds the window whose [Start, End) contains t, or -1.
func BucketIndex(windows []WeekWindow, t time.Time) int {
	for i, w := range windows {
		if !t.Before(w.Start) && t.Before(w.End) {
			return i
		}
	}
	return -1
}
