package models

import "time"

// Goal tracks progress toward a numeric target. Progress (current/target) is
// stored unclamped; the derive package clamps it to 100 for display.
type Goal struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Target      float64    `json:"target"`
	Current     float64    `json:"current"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon"`
	IsCompleted bool       `json:"isCompleted"`
}

// InsertGoal is the insertable shape of Goal.
type InsertGoal struct {
	UserID      int64      `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Target      float64    `json:"target"`
	Current     float64    `json:"current"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Category    string     `json:"category"`
	Icon        string     `json:"icon"`
	IsCompleted bool       `json:"isCompleted"`
}

// GoalPatch enumerates the fields settable by a partial update.
type GoalPatch struct {
	UserID      *int64     `json:"userId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Target      *float64   `json:"target,omitempty"`
	Current     *float64   `json:"current,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	IsCompleted *bool      `json:"isCompleted,omitempty"`
}
