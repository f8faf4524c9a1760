package derive

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders a past instant as a human bucket relative to now:
// "Today", "Yesterday", "N days ago", then weeks (/7), months (/30,
// an approximation, not calendar-aware) and years (/365), all rounded down.
//
// These strings are user-visible and must stay stable.
func FormatTimeAgo(date, now time.Time) string {
	days := daysBetween(date, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// FormatTimeRemaining renders a forward-looking deadline relative to now:
// "Overdue", "Due today", "1 day remaining", "N days remaining", then the
// same week/month/year buckets as FormatTimeAgo.
func FormatTimeRemaining(deadline, now time.Time) string {
	days := daysBetween(now, deadline)

	switch {
	case days < 0:
		return "Overdue"
	case days == 0:
		return "Due today"
	case days == 1:
		return "1 day remaining"
	case days < 7:
		return fmt.Sprintf("%d days remaining", days)
	case days < 30:
		return fmt.Sprintf("%d weeks remaining", days/7)
	case days < 365:
		return fmt.Sprintf("%d months remaining", days/30)
	default:
		return fmt.Sprintf("%d years remaining", days/365)
	}
}

// FormatEventDuration renders the span between two instants with
// integer-minute granularity, floor-rounded: "45m", "2h" or "2h 15m".
func FormatEventDuration(start, end time.Time) string {
	minutes := int(end.Sub(start).Minutes())

	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if rest := minutes % 60; rest > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%dh", hours)
}
