// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the entity, insert and patch types shared by the
// store, service and handler layers of the Aion application.
//
// Every entity carries an integer identity assigned by the store at creation
// and a UserID partition key. Relationships between entities are expressed
// only through scalar fields resolved by query-time filtering; no entity
// holds a reference to another.
package models

// User represents an account entity.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the store.
	ID int64 `json:"id"`

	// Username is the unique login identifier. Uniqueness is enforced at
	// creation time only.
	Username string `json:"username"`

	// Password stores the user's password as submitted. It is stripped from
	// every HTTP response via WithoutPassword.
	Password string `json:"password,omitempty"`

	// Email is the unique contact address. Uniqueness is enforced at
	// creation time only.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// AvatarURL is an optional profile image location.
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// InsertUser is the insertable shape of User accepted by the REST layer.
type InsertUser struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Credentials carries the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WithoutPassword returns a copy of the user with the password cleared.
// Handlers must call it before writing a user to an HTTP response.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
