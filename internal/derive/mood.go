package derive

import (
	"math"
	"time"

	"github.com/MKhiriev/aion/models"
)

// moodScores is the fixed mapping of mood labels to 0-100 intensity scores.
var moodScores = map[models.MoodType]int{
	models.MoodHappy:     90,
	models.MoodEnergetic: 85,
	models.MoodCalm:      75,
	models.MoodNeutral:   60,
	models.MoodTired:     40,
	models.MoodAnxious:   30,
	models.MoodSad:       20,
	models.MoodAngry:     10,
}

// defaultMoodScore is used for any label outside the known set.
const defaultMoodScore = 50

// MoodScore maps a mood label to its intensity score. The lookup is total:
// unknown labels score defaultMoodScore, never an error.
func MoodScore(moodType models.MoodType) int {
	if score, ok := moodScores[moodType]; ok {
		return score
	}
	return defaultMoodScore
}

// DayScore is one point of a per-weekday mood series.
type DayScore struct {
	Day     string `json:"day"`
	Score   int    `json:"score"`
	IsToday bool   `json:"isToday"`
}

// weekdayLabels indexed Monday-first, matching the dashboard trend chart.
var weekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklyTrend builds the Monday-through-Sunday mood series for the dashboard.
// Each day takes the score of the first mood record in moods whose date falls
// on that weekday, or 0 when none is recorded. The first-match policy (rather
// than an average) is a deliberately preserved behaviour; WeekdayAverages is
// the averaged alternative.
//
// Window filtering is the caller's concern: moods should already be limited
// to the query window of interest.
func WeeklyTrend(moods []models.Mood, now time.Time) []DayScore {
	today := mondayIndex(now.Weekday())

	trend := make([]DayScore, 0, len(weekdayLabels))
	for i, label := range weekdayLabels {
		score := 0
		for _, mood := range moods {
			if mondayIndex(mood.Date.Weekday()) == i {
				score = MoodScore(mood.MoodType)
				break
			}
		}

		trend = append(trend, DayScore{
			Day:     label,
			Score:   score,
			IsToday: i == today,
		})
	}

	return trend
}

// WeekdayAverages builds a Sunday-through-Saturday series where each day is
// the rounded average score of all moods recorded on that weekday, or 0 when
// none is recorded.
func WeekdayAverages(moods []models.Mood) []DayScore {
	labels := [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	series := make([]DayScore, 0, len(labels))
	for day := range labels {
		sum, count := 0, 0
		for _, mood := range moods {
			if int(mood.Date.Weekday()) == day {
				sum += MoodScore(mood.MoodType)
				count++
			}
		}

		average := 0
		if count > 0 {
			average = int(math.Round(float64(sum) / float64(count)))
		}

		series = append(series, DayScore{Day: labels[day], Score: average})
	}

	return series
}

// MoodCount is the number of records carrying one mood label.
type MoodCount struct {
	MoodType models.MoodType `json:"moodType"`
	Count    int             `json:"count"`
}

// Distribution counts moods per label, in label-table order, omitting labels
// with no records.
func Distribution(moods []models.Mood) []MoodCount {
	order := []models.MoodType{
		models.MoodHappy, models.MoodEnergetic, models.MoodCalm,
		models.MoodNeutral, models.MoodTired, models.MoodAnxious,
		models.MoodSad, models.MoodAngry,
	}

	counts := make(map[models.MoodType]int, len(order))
	for _, mood := range moods {
		counts[mood.MoodType]++
	}

	distribution := make([]MoodCount, 0, len(order))
	for _, moodType := range order {
		if counts[moodType] > 0 {
			distribution = append(distribution, MoodCount{MoodType: moodType, Count: counts[moodType]})
		}
	}

	return distribution
}

// mondayIndex converts time.Weekday (Sunday = 0) to a Monday-first index
// (Monday = 0 ... Sunday = 6).
func mondayIndex(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return 6
	}
	return int(weekday) - 1
}
