// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/aion/internal/adapter"
	"github.com/MKhiriev/aion/internal/derive"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

// Canned replies used when the data is too thin or the bridge fails. The
// analysis methods never surface an upstream error to the caller.
const (
	emptyScheduleSuggestion = "Consider setting up your schedule to include focused work blocks, regular breaks, and time for recreation."

	fallbackScheduleSuggestion = "Based on your schedule, consider blocking out 2 hours in the morning for deep work on your most important tasks."

	tooFewMoodsMessage = "Record more moods to receive personalized insights about your emotional patterns."

	noDomainsMessage = "No life domains data available for analysis."
)

// minMoodsForAnalysis is the smallest history that yields a pattern analysis.
const minMoodsForAnalysis = 3

// lowDomainThreshold is the score below which the balance fallback singles
// out the weakest domain.
const lowDomainThreshold = 65

// BalanceAnalysis is the reply of the life-balance analysis: the rounded
// mean score plus one piece of advice.
type BalanceAnalysis struct {
	OverallScore int    `json:"overallScore"`
	Insights     string `json:"insights"`
}

type suggestionService struct {
	client   adapter.SuggestionClient
	storages *store.Storages

	logger *logger.Logger
}

func NewSuggestionService(client adapter.SuggestionClient, storages *store.Storages, logger *logger.Logger) SuggestionService {
	return &suggestionService{client: client, storages: storages, logger: logger}
}

// Generate submits the caller-provided data snapshot to the bridge and
// persists the reply as an Insight{type=suggestion, category="ai"}.
//
// Upstream failures propagate to the caller; this is the one AI operation
// with no local fallback, since the caller supplied arbitrary data the
// service cannot reason about.
func (s *suggestionService) Generate(ctx context.Context, request models.SuggestionRequest) (models.Insight, error) {
	log := logger.FromContext(ctx)

	if err := s.validateRequest(request); err != nil {
		log.Error().Err(err).Int64("userID", request.UserID).Msg("invalid suggestion request")
		return models.Insight{}, err
	}

	content, err := s.client.GenerateInsight(ctx, request.Data)
	if err != nil {
		log.Err(err).Int64("userID", request.UserID).Msg("suggestion generation failed")
		return models.Insight{}, fmt.Errorf("suggestion generation failed: %w", err)
	}

	insight, err := s.storages.InsightRepository.Create(ctx, models.InsertInsight{
		UserID:   request.UserID,
		Content:  content,
		Type:     models.InsightSuggestion,
		Category: "ai",
	})
	if err != nil {
		return models.Insight{}, fmt.Errorf("suggestion persistence failed: %w", err)
	}

	return insight, nil
}

func (s *suggestionService) validateRequest(request models.SuggestionRequest) error {
	var errs validators.FieldErrors
	if request.UserID <= 0 {
		errs = append(errs, validators.FieldError{Field: validators.FieldUserID, Message: "userId must be positive"})
	}
	if len(request.Data) == 0 || string(request.Data) == "null" {
		errs = append(errs, validators.FieldError{Field: "data", Message: "data is required"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// AnalyzeLifeBalance computes the rounded mean of the user's domain scores
// and asks the bridge for one piece of advice about them. On bridge failure
// it substitutes a deterministic message built from the weakest domain.
func (s *suggestionService) AnalyzeLifeBalance(ctx context.Context, userID int64) (BalanceAnalysis, error) {
	log := logger.FromContext(ctx)

	domains, err := s.storages.LifeDomainRepository.List(ctx, userID)
	if err != nil {
		return BalanceAnalysis{}, fmt.Errorf("life balance domain listing failed: %w", err)
	}

	if len(domains) == 0 {
		return BalanceAnalysis{OverallScore: 0, Insights: noDomainsMessage}, nil
	}

	overallScore := derive.OverallBalance(domains)

	type domainScore struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}
	snapshot := struct {
		Domains      []domainScore `json:"domains"`
		OverallScore int           `json:"overallScore"`
	}{OverallScore: overallScore}
	for _, domain := range domains {
		snapshot.Domains = append(snapshot.Domains, domainScore{Name: domain.Name, Score: domain.Score})
	}

	if insights, ok := s.tryBridge(ctx, userID, snapshot); ok {
		return BalanceAnalysis{OverallScore: overallScore, Insights: insights}, nil
	}

	insights := "Your life appears generally balanced. "
	if lowest, ok := derive.LowestDomain(domains); ok && lowest.Score < lowDomainThreshold {
		insights += fmt.Sprintf("Consider focusing more on improving your %s domain.", strings.ToLower(lowest.Name))
	} else {
		insights += "All domains are performing well, keep up the good work!"
	}

	log.Debug().Int64("userID", userID).Msg("life balance analysis used local fallback")
	return BalanceAnalysis{OverallScore: overallScore, Insights: insights}, nil
}

// AnalyzeMoodPatterns asks the bridge about the user's mood history. With
// fewer than three records it returns a canned prompt to record more; on
// bridge failure it names the most frequently recorded mood.
func (s *suggestionService) AnalyzeMoodPatterns(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	moods, err := s.storages.MoodRepository.List(ctx, userID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("mood pattern listing failed: %w", err)
	}

	if len(moods) < minMoodsForAnalysis {
		return tooFewMoodsMessage, nil
	}

	type moodRecord struct {
		MoodType models.MoodType `json:"moodType"`
		Date     time.Time       `json:"date"`
		Notes    string          `json:"notes,omitempty"`
	}
	snapshot := struct {
		Moods []moodRecord `json:"moods"`
	}{}
	for _, mood := range moods {
		snapshot.Moods = append(snapshot.Moods, moodRecord{MoodType: mood.MoodType, Date: mood.Date, Notes: mood.Notes})
	}

	if analysis, ok := s.tryBridge(ctx, userID, snapshot); ok {
		return analysis, nil
	}

	mostCommon := mostCommonMood(moods)
	log.Debug().Int64("userID", userID).Str("mood", string(mostCommon)).Msg("mood analysis used local fallback")
	return fmt.Sprintf("You most frequently record feeling %s. Consider exploring what factors contribute to this mood.", mostCommon), nil
}

// SuggestScheduleOptimization asks the bridge about the user's upcoming
// events. With no events it returns the canned setup prompt; on bridge
// failure it returns the canned deep-work suggestion.
func (s *suggestionService) SuggestScheduleOptimization(ctx context.Context, userID int64) (string, error) {
	log := logger.FromContext(ctx)

	events, err := s.storages.EventRepository.List(ctx, userID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("schedule event listing failed: %w", err)
	}

	if len(events) == 0 {
		return emptyScheduleSuggestion, nil
	}

	type eventRecord struct {
		Title     string           `json:"title"`
		StartTime time.Time        `json:"startTime"`
		EndTime   time.Time        `json:"endTime"`
		Type      models.EventType `json:"type"`
	}
	snapshot := struct {
		Events []eventRecord `json:"events"`
	}{}
	for _, event := range events {
		snapshot.Events = append(snapshot.Events, eventRecord{
			Title: event.Title, StartTime: event.StartTime, EndTime: event.EndTime, Type: event.Type,
		})
	}

	if suggestion, ok := s.tryBridge(ctx, userID, snapshot); ok {
		return suggestion, nil
	}

	log.Debug().Int64("userID", userID).Msg("schedule suggestion used local fallback")
	return fallbackScheduleSuggestion, nil
}

// tryBridge serializes the snapshot, calls the bridge and persists a
// successful reply. Any failure, marshalling included, reports !ok so the
// caller can fall back.
func (s *suggestionService) tryBridge(ctx context.Context, userID int64, snapshot any) (string, bool) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(snapshot)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("snapshot serialization failed")
		return "", false
	}

	content, err := s.client.GenerateInsight(ctx, data)
	if err != nil {
		log.Warn().Err(err).Int64("userID", userID).Msg("bridge call failed, falling back")
		return "", false
	}

	if _, err := s.storages.InsightRepository.Create(ctx, models.InsertInsight{
		UserID:   userID,
		Content:  content,
		Type:     models.InsightSuggestion,
		Category: "ai",
	}); err != nil {
		log.Err(err).Int64("userID", userID).Msg("bridge insight persistence failed")
	}

	return content, true
}

func mostCommonMood(moods []models.Mood) models.MoodType {
	counts := make(map[models.MoodType]int)
	for _, mood := range moods {
		counts[mood.MoodType]++
	}

	var best models.MoodType
	bestCount := 0
	for moodType, count := range counts {
		if count > bestCount || (count == bestCount && moodType < best) {
			best = moodType
			bestCount = count
		}
	}
	return best
}
