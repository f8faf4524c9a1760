// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the entity store: in-memory keyed collections for
// the seven entity kinds, each with auto-incrementing identity and basic CRUD
// plus range-filtered queries.
//
// Data lives for the process lifetime only; there is no durable format.
// Identities are assigned monotonically per kind and never reused. Every
// repository guards its collection with a sync.RWMutex, so individual
// operations are atomic with respect to each other; concurrent writers to
// the same record are last-write-wins with no optimistic-lock detection.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/aion/models"
)

// UserRepository stores user accounts. FindByUsername and FindByEmail are
// deliberate linear scans: uniqueness is checked only at creation time and no
// secondary index is otherwise needed at this scale.
type UserRepository interface {
	Create(ctx context.Context, user models.InsertUser) (models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// First returns the earliest-created user still present. It backs the
	// /api/users/me placeholder, which has no session to resolve.
	First(ctx context.Context) (models.User, error)
}

// LifeDomainRepository stores life domains, listed in insertion order.
type LifeDomainRepository interface {
	Create(ctx context.Context, domain models.InsertLifeDomain) (models.LifeDomain, error)
	Get(ctx context.Context, id int64) (models.LifeDomain, error)
	List(ctx context.Context, userID int64) ([]models.LifeDomain, error)
	Update(ctx context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error)
	Delete(ctx context.Context, id int64) bool
}

// EventRepository stores events, listed ascending by start time with optional
// inclusive range bounds on the start time.
type EventRepository interface {
	Create(ctx context.Context, event models.InsertEvent) (models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error)
	Update(ctx context.Context, id int64, patch models.EventPatch) (models.Event, error)
	Delete(ctx context.Context, id int64) bool
}

// MoodRepository stores mood records, listed descending by date with optional
// inclusive range bounds. Moods are append-only: no update, no delete.
type MoodRepository interface {
	Create(ctx context.Context, mood models.InsertMood) (models.Mood, error)
	Get(ctx context.Context, id int64) (models.Mood, error)
	List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Mood, error)
}

// TransactionRepository stores transactions, listed descending by date with
// optional inclusive range bounds. Transactions are append-only.
type TransactionRepository interface {
	Create(ctx context.Context, transaction models.InsertTransaction) (models.Transaction, error)
	Get(ctx context.Context, id int64) (models.Transaction, error)
	List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Transaction, error)
}

// GoalRepository stores goals, listed in insertion order.
type GoalRepository interface {
	Create(ctx context.Context, goal models.InsertGoal) (models.Goal, error)
	Get(ctx context.Context, id int64) (models.Goal, error)
	List(ctx context.Context, userID int64) ([]models.Goal, error)
	Update(ctx context.Context, id int64, patch models.GoalPatch) (models.Goal, error)
	Delete(ctx context.Context, id int64) bool
}

// ContactRepository stores contacts, listed in insertion order.
type ContactRepository interface {
	Create(ctx context.Context, contact models.InsertContact) (models.Contact, error)
	Get(ctx context.Context, id int64) (models.Contact, error)
	List(ctx context.Context, userID int64) ([]models.Contact, error)
	Update(ctx context.Context, id int64, patch models.ContactPatch) (models.Contact, error)
	Delete(ctx context.Context, id int64) bool
}

// InsightRepository stores insights, listed descending by creation time.
// CreatedAt is assigned by Create and is immutable afterwards.
type InsightRepository interface {
	Create(ctx context.Context, insight models.InsertInsight) (models.Insight, error)
	Get(ctx context.Context, id int64) (models.Insight, error)

	// List returns the user's insights, newest first. A limit of 0 or less
	// means no limit.
	List(ctx context.Context, userID int64, limit int) ([]models.Insight, error)

	MarkRead(ctx context.Context, id int64) (models.Insight, error)
	MarkActioned(ctx context.Context, id int64) (models.Insight, error)
}
