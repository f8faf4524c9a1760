package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/internal/validators"
	"github.com/MKhiriev/aion/models"
)

// lifeDomainService validates life-domain payloads and delegates persistence
// to the LifeDomainRepository.
type lifeDomainService struct {
	repository store.LifeDomainRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewLifeDomainService(repository store.LifeDomainRepository, validator validators.Validator, logger *logger.Logger) LifeDomainService {
	return &lifeDomainService{repository: repository, validator: validator, logger: logger}
}

func (s *lifeDomainService) Create(ctx context.Context, insert models.InsertLifeDomain) (models.LifeDomain, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid life domain provided")
		return models.LifeDomain{}, err
	}

	domain, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.LifeDomain{}, fmt.Errorf("life domain creation ended with error: %w", err)
	}
	return domain, nil
}

func (s *lifeDomainService) Get(ctx context.Context, id int64) (models.LifeDomain, error) {
	return s.repository.Get(ctx, id)
}

func (s *lifeDomainService) List(ctx context.Context, userID int64) ([]models.LifeDomain, error) {
	return s.repository.List(ctx, userID)
}

func (s *lifeDomainService) Update(ctx context.Context, id int64, patch models.LifeDomainPatch) (models.LifeDomain, error) {
	if err := s.validator.Validate(ctx, patch); err != nil {
		logger.FromContext(ctx).Error().Err(err).Int64("id", id).Msg("invalid life domain patch provided")
		return models.LifeDomain{}, err
	}

	return s.repository.Update(ctx, id, patch)
}

// Delete reports store.ErrLifeDomainNotFound for an unknown id so transport
// can answer 404; the repository itself treats repeat deletes as a no-op.
func (s *lifeDomainService) Delete(ctx context.Context, id int64) error {
	if deleted := s.repository.Delete(ctx, id); !deleted {
		return store.ErrLifeDomainNotFound
	}
	return nil
}
