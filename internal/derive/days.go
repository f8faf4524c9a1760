package derive

import (
	"math"
	"time"
)

// daysBetween returns the number of whole days from "from" to "to",
// rounded toward negative infinity. A result of -1 therefore means "to" is
// up to a day in the past of "from".
func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// DayRange returns the inclusive [start, end] window of t's calendar day.
func DayRange(t time.Time) (time.Time, time.Time) {
	return startOfDay(t), endOfDay(t)
}
