package periodization

import "time"

// DateLayout is the ISO-8601 calendar date format used for stored dates.
const DateLayout = "2006-01-02"

// StartOfDay truncates t to midnight UTC of its calendar date.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddWeeks returns the date n weeks after t.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, 7*n)
}

// AddMonths returns the date n calendar months after t. The day of month is
// clamped to the last day of the target month, so Jan 31 + 1 month is Feb 28/29
// rather than rolling into March.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := daysIn(first); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// WeeksBetween is the number of whole or partial weeks in [start, end).
func WeeksBetween(start, end time.Time) int {
	days := int(StartOfDay(end).Sub(StartOfDay(start)).Hours() / 24)
	if days <= 0 {
		return 0
	}
	return (days + 6) / 7
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}
