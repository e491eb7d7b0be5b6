package schedule

import (
	"strings"
	"time"
)

const (
	RangeToday     = "today"
	RangeThisWeek  = "this_week"
	RangeNextWeek  = "next_week"
	RangeThisMonth = "this_month"
	RangeNextMonth = "next_month"
	RangeThisYear  = "this_year"
)

// ResolveRange turns a named preset into an inclusive [first, last] day range
// relative to now. "this_*" ranges start today, "next_*" ranges start at the
// beginning of the next week (Monday) or month. Empty or unrecognised names
// mean today.
func (s Schedule) ResolveRange(name string, now time.Time) (first, last time.Time) {
	today := s.Today(now)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RangeThisWeek:
		return today, today.AddDate(0, 0, daysUntilSunday(today))
	case RangeNextWeek:
		monday := today.AddDate(0, 0, daysUntilSunday(today)+1)
		return monday, monday.AddDate(0, 0, 6)
	case RangeThisMonth:
		firstOfNext := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
		return today, firstOfNext.AddDate(0, 0, -1)
	case RangeNextMonth:
		start := time.Date(today.Year(), today.Month()+1, 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, -1)
	case RangeThisYear:
		return today, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	default:
		return today, today
	}
}

func daysUntilSunday(day time.Time) int {
	// time.Sunday == 0; Monday-based weeks end on Sunday.
	return (7 - int(day.Weekday())) % 7
}
