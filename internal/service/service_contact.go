package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

type contactService struct {
	repository store.ContactRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewContactService(repository store.ContactRepository, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{repository: repository, validator: validator, logger: logger}
}

func (s *contactService) Create(ctx context.Context, insert models.InsertContact) (models.Contact, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid contact provided")
		return models.Contact{}, err
	}

	contact, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}
	return contact, nil
}

func (s *contactService) Get(ctx context.Context, id int64) (models.Contact, error) {
	return s.repository.Get(ctx, id)
}

func (s *contactService) List(ctx context.Context, userID int64) ([]models.Contact, error) {
	return s.repository.List(ctx, userID)
}

func (s *contactService) Update(ctx context.Context, id int64, patch models.ContactPatch) (models.Contact, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("id", id).Msg("invalid contact patch provided")
		return models.Contact{}, err
	}

	return s.repository.Update(ctx, id, patch)
}

func (s *contactService) Delete(ctx context.Context, id int64) error {
	if deleted := s.repository.Delete(ctx, id); !deleted {
		return store.ErrContactNotFound
	}
	return nil
}
