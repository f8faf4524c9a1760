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

type eventService struct {
	repository store.EventRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewEventService(repository store.EventRepository, validator validators.Validator, logger *logger.Logger) EventService {
	return &eventService{repository: repository, validator: validator, logger: logger}
}

func (s *eventService) Create(ctx context.Context, insert models.InsertEvent) (models.Event, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid event provided")
		return models.Event{}, err
	}

	event, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.Event{}, fmt.Errorf("event creation ended with error: %w", err)
	}
	return event, nil
}

func (s *eventService) Get(ctx context.Context, id int64) (models.Event, error) {
	return s.repository.Get(ctx, id)
}

func (s *eventService) List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Event, error) {
	return s.repository.List(ctx, userID, from, to)
}

// Update validates the patch, then checks the end-after-start rule against
// the stored record when only one bound is being changed.
func (s *eventService) Update(ctx context.Context, id int64, patch models.EventPatch) (models.Event, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("id", id).Msg("invalid event patch provided")
		return models.Event{}, err
	}

	if patch.StartTime != nil || patch.EndTime != nil {
		existing, err := s.repository.Get(ctx, id)
		if err != nil {
			return models.Event{}, err
		}

		start, end := existing.StartTime, existing.EndTime
		if patch.StartTime != nil {
			start = *patch.StartTime
		}
		if patch.EndTime != nil {
			end = *patch.EndTime
		}
		if !end.After(start) {
			return models.Event{}, validators.FieldErrors{
				{Field: validators.FieldEndTime, Message: "endTime must be after startTime"},
			}
		}
	}

	return s.repository.Update(ctx, id, patch)
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	if deleted := s.repository.Delete(ctx, id); !deleted {
		return store.ErrEventNotFound
	}
	return nil
}
