package dateutil

import "time"

// endOfPeriodPrecision is subtracted from the next period start to get the
// end of the current one.
const endOfPeriodPrecision = time.Millisecond

// ToUnix returns t as seconds since the Unix epoch.
func ToUnix(t time.Time) int64 {
	return t.Unix()
}

// FromUnix returns the UTC time for sec seconds since the Unix epoch.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// StartOfDay returns midnight of t's day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the most recent weekStart on or before t.
// weekStart defaults to time.Monday; only the first value is used.
func StartOfWeek(t time.Time, weekStart ...time.Weekday) time.Time {
	start := time.Monday
	if len(weekStart) > 0 {
		start = weekStart[0]
	}
	diff := (7 + int(t.Weekday()) - int(start)) % 7
	return StartOfDay(t.AddDate(0, 0, -diff))
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last millisecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-endOfPeriodPrecision)
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBetween reports whether t lies between start and end.
// With inclusive set the boundaries themselves match.
func IsBetween(t, start, end time.Time, inclusive bool) bool {
	if inclusive {
		return !t.Before(start) && !t.After(end)
	}
	return t.After(start) && t.Before(end)
}
