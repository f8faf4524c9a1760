package derive

import (
	"math"
	"time"

	"github.com/MKhiriev/aion/models"
)

// GoalStatus is the derived pacing state of a goal.
type GoalStatus string

// Derived goal states.
const (
	GoalOnTrack   GoalStatus = "on-track"
	GoalBehind    GoalStatus = "behind"
	GoalCompleted GoalStatus = "completed"
)

// GoalProgress returns the goal's completion as an unclamped percentage.
// A goal with target <= 0 has progress 0.
func GoalProgress(goal models.Goal) float64 {
	if goal.Target <= 0 {
		return 0
	}
	return goal.Current / goal.Target * 100
}

// GoalProgressPercent returns the completion percentage clamped to [0, 100]
// and rounded to the nearest integer, suitable for display.
func GoalProgressPercent(goal models.Goal) int {
	progress := math.Round(GoalProgress(goal))
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return int(progress)
}

// GoalStatusOf derives the pacing status of a goal at the reference instant.
//
// A completed goal is always GoalCompleted regardless of progress or
// deadline. Otherwise, with a deadline present:
//
//   - past deadline: GoalBehind;
//   - under 7 days left with progress below 80%: GoalBehind;
//   - under 30 days left with progress below 50%: GoalBehind;
//   - anything else: GoalOnTrack.
//
// A goal without a deadline is GoalOnTrack absent further signal. This is a
// heuristic pacing model, not a schedule-feasibility check.
func GoalStatusOf(goal models.Goal, now time.Time) GoalStatus {
	if goal.IsCompleted {
		return GoalCompleted
	}
	if goal.Deadline == nil {
		return GoalOnTrack
	}

	progress := GoalProgress(goal)
	daysLeft := daysBetween(now, *goal.Deadline)

	switch {
	case daysLeft < 0:
		return GoalBehind
	case daysLeft < 7 && progress < 80:
		return GoalBehind
	case daysLeft < 30 && progress < 50:
		return GoalBehind
	default:
		return GoalOnTrack
	}
}
