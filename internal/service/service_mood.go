package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

// moodService covers the append-only mood records: create and list only.
type moodService struct {
	repository store.MoodRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewMoodService(repository store.MoodRepository, validator validators.Validator, logger *logger.Logger) MoodService {
	return &moodService{repository: repository, validator: validator, logger: logger}
}

func (s *moodService) Create(ctx context.Context, insert models.InsertMood) (models.Mood, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid mood provided")
		return models.Mood{}, err
	}

	mood, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.Mood{}, fmt.Errorf("mood creation ended with error: %w", err)
	}
	return mood, nil
}

func (s *moodService) List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Mood, error) {
	return s.repository.List(ctx, userID, from, to)
}
