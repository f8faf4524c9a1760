package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

type insightService struct {
	repository store.InsightRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewInsightService(repository store.InsightRepository, validator validators.Validator, logger *logger.Logger) InsightService {
	return &insightService{repository: repository, validator: validator, logger: logger}
}

func (s *insightService) Create(ctx context.Context, insert models.InsertInsight) (models.Insight, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid insight provided")
		return models.Insight{}, err
	}

	insight, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.Insight{}, fmt.Errorf("insight creation ended with error: %w", err)
	}
	return insight, nil
}

func (s *insightService) List(ctx context.Context, userID int64, limit int) ([]models.Insight, error) {
	return s.repository.List(ctx, userID, limit)
}

func (s *insightService) MarkRead(ctx context.Context, id int64) (models.Insight, error) {
	return s.repository.MarkRead(ctx, id)
}

func (s *insightService) MarkActioned(ctx context.Context, id int64) (models.Insight, error) {
	return s.repository.MarkActioned(ctx, id)
}
