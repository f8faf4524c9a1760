package models

import "time"

// MoodType is one of the eight recorded mood labels.
type MoodType string

// Mood labels recognised by the scoring table. Unknown labels are still
// stored as-is and score a neutral default at presentation time.
const (
	MoodHappy     MoodType = "happy"
	MoodEnergetic MoodType = "energetic"
	MoodCalm      MoodType = "calm"
	MoodNeutral   MoodType = "neutral"
	MoodTired     MoodType = "tired"
	MoodAnxious   MoodType = "anxious"
	MoodSad       MoodType = "sad"
	MoodAngry     MoodType = "angry"
)

// Mood is a single mood submission. Multiple records on the same day are
// legal; there is no per-day uniqueness constraint.
type Mood struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"userId"`
	Date     time.Time `json:"date"`
	MoodType MoodType  `json:"moodType"`
	Notes    string    `json:"notes,omitempty"`
}

// InsertMood is the insertable shape of Mood.
type InsertMood struct {
	UserID   int64     `json:"userId"`
	Date     time.Time `json:"date"`
	MoodType MoodType  `json:"moodType"`
	Notes    string    `json:"notes,omitempty"`
}
