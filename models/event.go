package models

import "time"

// EventType classifies a scheduled event.
type EventType string

// Allowed event types.
const (
	EventWork     EventType = "work"
	EventHealth   EventType = "health"
	EventPersonal EventType = "personal"
	EventOther    EventType = "other"
)

// Event is a scheduled activity. EndTime is expected to be after StartTime;
// the store does not enforce this, callers validate before submission.
type Event struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Type        EventType `json:"type"`
	Location    string    `json:"location,omitempty"`
}

// InsertEvent is the insertable shape of Event.
type InsertEvent struct {
	UserID      int64     `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Type        EventType `json:"type"`
	Location    string    `json:"location,omitempty"`
}

// EventPatch enumerates the fields settable by a partial update.
type EventPatch struct {
	UserID      *int64     `json:"userId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Type        *EventType `json:"type,omitempty"`
	Location    *string    `json:"location,omitempty"`
}
