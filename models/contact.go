package models

import "time"

// Contact is a person in the user's human network. A nil LastContact is a
// valid, meaningful state: the person has never been contacted.
type Contact struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	LastContact  *time.Time `json:"lastContact,omitempty"`
	Relationship string     `json:"relationship,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// InsertContact is the insertable shape of Contact.
type InsertContact struct {
	UserID       int64      `json:"userId"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	AvatarURL    string     `json:"avatarUrl,omitempty"`
	LastContact  *time.Time `json:"lastContact,omitempty"`
	Relationship string     `json:"relationship,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// ContactPatch enumerates the fields settable by a partial update.
type ContactPatch struct {
	UserID       *int64     `json:"userId,omitempty"`
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	AvatarURL    *string    `json:"avatarUrl,omitempty"`
	LastContact  *time.Time `json:"lastContact,omitempty"`
	Relationship *string    `json:"relationship,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}
