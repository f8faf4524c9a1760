package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

type goalService struct {
	repository store.GoalRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewGoalService(repository store.GoalRepository, validator validators.Validator, logger *logger.Logger) GoalService {
	return &goalService{repository: repository, validator: validator, logger: logger}
}

func (s *goalService) Create(ctx context.Context, insert models.InsertGoal) (models.Goal, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid goal provided")
		return models.Goal{}, err
	}

	goal, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.Goal{}, fmt.Errorf("goal creation ended with error: %w", err)
	}
	return goal, nil
}

func (s *goalService) Get(ctx context.Context, id int64) (models.Goal, error) {
	return s.repository.Get(ctx, id)
}

func (s *goalService) List(ctx context.Context, userID int64) ([]models.Goal, error) {
	return s.repository.List(ctx, userID)
}

func (s *goalService) Update(ctx context.Context, id int64, patch models.GoalPatch) (models.Goal, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("id", id).Msg("invalid goal patch provided")
		return models.Goal{}, err
	}

	return s.repository.Update(ctx, id, patch)
}

func (s *goalService) Delete(ctx context.Context, id int64) error {
	if deleted := s.repository.Delete(ctx, id); !deleted {
		return store.ErrGoalNotFound
	}
	return nil
}
