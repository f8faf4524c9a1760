package models

import "time"

// InsightType classifies a persisted piece of generated text.
type InsightType string

// Allowed insight types.
const (
	InsightSuggestion InsightType = "suggestion"
	InsightReminder   InsightType = "reminder"
	InsightAnalysis   InsightType = "analysis"
)

// Insight is an AI- or rule-generated message shown to the user.
// CreatedAt is assigned by the store at creation and is immutable; any
// client-supplied value is ignored.
type Insight struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	Content    string      `json:"content"`
	Type       InsightType `json:"type"`
	Category   string      `json:"category"`
	CreatedAt  time.Time   `json:"createdAt"`
	IsRead     bool        `json:"isRead"`
	IsActioned bool        `json:"isActioned"`
}

// InsertInsight is the insertable shape of Insight. It deliberately has no
// CreatedAt field: the store owns that value.
type InsertInsight struct {
	UserID     int64       `json:"userId"`
	Content    string      `json:"content"`
	Type       InsightType `json:"type"`
	Category   string      `json:"category"`
	IsRead     bool        `json:"isRead"`
	IsActioned bool        `json:"isActioned"`
}
