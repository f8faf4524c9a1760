// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/aion/internal/derive"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/models"
)

// recentInsightCount bounds the insight block of the summary.
const recentInsightCount = 3

// GoalOverview is a goal together with its derived presentation values.
type GoalOverview struct {
	models.Goal

	// Progress is the raw current/target ratio in percent, unclamped.
	Progress float64 `json:"progress"`

	// ProgressPercent is Progress clamped to [0, 100] for display.
	ProgressPercent int `json:"progressPercent"`

	Status derive.GoalStatus `json:"status"`

	// TimeRemaining is a human label for the deadline ("3 days remaining",
	// "Overdue"). Empty when the goal has no deadline.
	TimeRemaining string `json:"timeRemaining,omitempty"`
}

// ContactOverview is a contact together with its staleness classification.
type ContactOverview struct {
	models.Contact

	Status derive.ContactStatus `json:"status"`

	// LastContactLabel is a human label for the last touch ("3 weeks ago").
	// "Never" when the contact has no recorded touch.
	LastContactLabel string `json:"lastContactLabel"`
}

// EventOverview is an event together with its formatted duration.
type EventOverview struct {
	models.Event

	Duration string `json:"duration"`
}

// DashboardSummary is the aggregate the dashboard renders from a single
// request: every entity list the user owns plus the derived values the
// client previously computed for itself.
type DashboardSummary struct {
	OverallBalance int                    `json:"overallBalance"`
	Domains        []models.LifeDomain    `json:"domains"`
	Goals          []GoalOverview         `json:"goals"`
	Contacts       []ContactOverview      `json:"contacts"`
	WeeklyTrend    []derive.DayScore      `json:"weeklyTrend"`
	Finance        derive.FinanceSummary  `json:"finance"`
	Spending       []derive.CategoryTotal `json:"spending"`
	TodaySchedule  []EventOverview        `json:"todaySchedule"`
	RecentInsights []models.Insight       `json:"recentInsights"`
}

type dashboardService struct {
	storages *store.Storages

	// now is the clock used for all derived values; injectable for tests.
	now func() time.Time

	logger *logger.Logger
}

func NewDashboardService(storages *store.Storages, logger *logger.Logger) DashboardService {
	return &dashboardService{storages: storages, now: time.Now, logger: logger}
}

// Summary assembles the full derived view of a user's data. All reads share
// one reference time so every derived value is mutually consistent.
func (s *dashboardService) Summary(ctx context.Context, userID int64) (DashboardSummary, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	domains, err := s.storages.LifeDomainRepository.List(ctx, userID)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard life domain listing failed: %w", err)
	}

	goals, err := s.storages.GoalRepository.List(ctx, userID)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard goal listing failed: %w", err)
	}

	contacts, err := s.storages.ContactRepository.List(ctx, userID)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard contact listing failed: %w", err)
	}

	// the trend covers only the trailing week; older moods share weekday
	// slots with current ones and must not leak into the series
	weekStart, weekEnd := derive.PeriodRange(derive.PeriodWeek, now)
	moods, err := s.storages.MoodRepository.List(ctx, userID, &weekStart, &weekEnd)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard mood listing failed: %w", err)
	}

	monthStart, monthEnd := derive.PeriodRange(derive.PeriodMonth, now)
	transactions, err := s.storages.TransactionRepository.List(ctx, userID, &monthStart, &monthEnd)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard transaction listing failed: %w", err)
	}

	dayStart, dayEnd := derive.DayRange(now)
	todayEvents, err := s.storages.EventRepository.List(ctx, userID, &dayStart, &dayEnd)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard event listing failed: %w", err)
	}

	insights, err := s.storages.InsightRepository.List(ctx, userID, recentInsightCount)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard insight listing failed: %w", err)
	}

	summary := DashboardSummary{
		OverallBalance: derive.OverallBalance(domains),
		Domains:        domains,
		Goals:          make([]GoalOverview, 0, len(goals)),
		Contacts:       make([]ContactOverview, 0, len(contacts)),
		WeeklyTrend:    derive.WeeklyTrend(moods, now),
		Finance:        derive.Summarize(transactions),
		Spending:       derive.CategoryTotals(transactions, models.TransactionExpense),
		TodaySchedule:  make([]EventOverview, 0, len(todayEvents)),
		RecentInsights: insights,
	}

	for _, goal := range goals {
		overview := GoalOverview{
			Goal:            goal,
			Progress:        derive.GoalProgress(goal),
			ProgressPercent: derive.GoalProgressPercent(goal),
			Status:          derive.GoalStatusOf(goal, now),
		}
		if goal.Deadline != nil {
			overview.TimeRemaining = derive.FormatTimeRemaining(*goal.Deadline, now)
		}
		summary.Goals = append(summary.Goals, overview)
	}

	for _, contact := range contacts {
		overview := ContactOverview{
			Contact:          contact,
			Status:           derive.ContactStatusOf(contact.LastContact, now),
			LastContactLabel: "Never",
		}
		if contact.LastContact != nil {
			overview.LastContactLabel = derive.FormatTimeAgo(*contact.LastContact, now)
		}
		summary.Contacts = append(summary.Contacts, overview)
	}

	for _, event := range todayEvents {
		summary.TodaySchedule = append(summary.TodaySchedule, EventOverview{
			Event:    event,
			Duration: derive.FormatEventDuration(event.StartTime, event.EndTime),
		})
	}

	log.Debug().
		Int64("userID", userID).
		Int("domains", len(domains)).
		Int("goals", len(goals)).
		Int("todayEvents", len(todayEvents)).
		Msg("dashboard summary assembled")

	return summary, nil
}
