// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business layer between the HTTP handlers
// and the entity store: payload validation, uniqueness checks, derived-state
// aggregation for the dashboard, and AI suggestion orchestration with
// deterministic local fallbacks.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/aion/models"
)

type AuthService interface {
	Register(ctx context.Context, user models.InsertUser) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CurrentUser resolves the acting user. There is no session store; the
	// earliest registered user is returned, which matches the single-user
	// deployment model.
	CurrentUser(ctx context.Context) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

type LifeDomainService interface {
	Create(ctx context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error)
	Get(ctx context.Context, id int64) (models.LifeDomain, error)
	List(ctx context.Context, userID int64) ([]models.LifeDomain, error)
	Update(ctx context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error)
	Delete(ctx context.Context, id int64) error
}

type EventService interface {
	Create(ctx context.Context, insert models.InsertEvent) (models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error)
	Update(ctx context.Context, id int64, patch models.EventPatch) (models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type MoodService interface {
	Create(ctx context.Context, insert models.InsertMood) (models.Mood, error)
	List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Mood, error)
}

type TransactionService interface {
	Create(ctx context.Context, insert models.InsertTransaction) (models.Transaction, error)
	List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Transaction, error)
}

type GoalService interface {
	Create(ctx context.Context, insert models.InsertGoal) (models.Goal, error)
	Get(ctx context.Context, id int64) (models.Goal, error)
	List(ctx context.Context, userID int64) ([]models.Goal, error)
	Update(ctx context.Context, id int64, patch models.GoalPatch) (models.Goal, error)
	Delete(ctx context.Context, id int64) error
}

type ContactService interface {
	Create(ctx context.Context, insert models.InsertContact) (models.Contact, error)
	Get(ctx context.Context, id int64) (models.Contact, error)
	List(ctx context.Context, userID int64) ([]models.Contact, error)
	Update(ctx context.Context, id int64, patch models.ContactPatch) (models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type InsightService interface {
	Create(ctx context.Context, insert models.InsertInsight) (models.Insight, error)
	List(ctx context.Context, userID int64, limit int) ([]models.Insight, error)
	MarkRead(ctx context.Context, id int64) (models.Insight, error)
	MarkActioned(ctx context.Context, id int64) (models.Insight, error)
}

// DashboardService assembles the derived view of a user's data in one call.
type DashboardService interface {
	Summary(ctx context.Context, userID int64) (DashboardSummary, error)
}

// SuggestionService orchestrates the AI bridge. Generate propagates upstream
// failures to the caller; the three analysis methods substitute deterministic
// local messages instead and never fail on bridge errors.
type SuggestionService interface {
	Generate(ctx context.Context, request models.SuggestionRequest) (models.Insight, error)

	AnalyzeLifeBalance(ctx context.Context, userID int64) (BalanceAnalysis, error)
	AnalyzeMoodPatterns(ctx context.Context, userID int64) (string, error)
	SuggestScheduleOptimization(ctx context.Context, userID int64) (string, error)
}
