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

// transactionService covers the append-only financial records: create and
// list only.
type transactionService struct {
	repository store.TransactionRepository
	validator  validators.Validator
	logger     *logger.Logger
}

func NewTransactionService(repository store.TransactionRepository, validator validators.Validator, logger *logger.Logger) TransactionService {
	return &transactionService{repository: repository, validator: validator, logger: logger}
}

func (s *transactionService) Create(ctx context.Context, insert models.InsertTransaction) (models.Transaction, error) {
	if err := s.validator.Validate(ctx, insert); err != nil {
		logger.FromContext(ctx).Error().Err(err).Msg("invalid transaction provided")
		return models.Transaction{}, err
	}

	transaction, err := s.repository.Create(ctx, insert)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction creation ended with error: %w", err)
	}
	return transaction, nil
}

func (s *transactionService) List(ctx context.Context, userID int64, from, to *time.Time) ([]models.Transaction, error) {
	return s.repository.List(ctx, userID, from, to)
}
