// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/aion/internal/logger"

// Storages groups all entity repositories into a single dependency that the
// service layer receives.
type Storages struct {
	UserRepository        UserRepository
	LifeDomainRepository  LifeDomainRepository
	EventRepository       EventRepository
	MoodRepository        MoodRepository
	TransactionRepository TransactionRepository
	GoalRepository        GoalRepository
	ContactRepository     ContactRepository
	InsightRepository     InsightRepository
}

// NewStorages constructs the full in-memory storage layer. Every repository
// starts empty; seeding is the caller's concern.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(logger),
		LifeDomainRepository:  NewLifeDomainRepository(logger),
		EventRepository:       NewEventRepository(logger),
		MoodRepository:        NewMoodRepository(logger),
		TransactionRepository: NewTransactionRepository(logger),
		GoalRepository:        NewGoalRepository(logger),
		ContactRepository:     NewContactRepository(logger),
		InsightRepository:     NewInsightRepository(logger),
	}
}
