package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/models"
)

type transactionRepository struct {
	mu           sync.RWMutex
	transactions map[int64]models.Transaction
	nextID       int64

	logger *logger.Logger
}

func NewTransactionRepository(logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("TransactionRepository created")
	return &transactionRepository{
		transactions: make(map[int64]models.Transaction),
		nextID:       1,
		logger:       logger,
	}
}

func (r *transactionRepository) Create(_ context.Context, insert models.InsertTransaction) (models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	transaction := models.Transaction{
		ID:          r.nextID,
		UserID:      insert.UserID,
		Amount:      insert.Amount,
		Category:    insert.Category,
		Date:        insert.Date,
		Description: insert.Description,
		Type:        insert.Type,
	}
	r.transactions[transaction.ID] = transaction
	r.nextID++

	return transaction, nil
}

func (r *transactionRepository) Get(_ context.Context, id int64) (models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transaction, ok := r.transactions[id]
	if !ok {
		return models.Transaction{}, ErrTransactionNotFound
	}
	return transaction, nil
}

// List filters by user and an optional inclusive window on the transaction
// date, ordered descending by date.
func (r *transactionRepository) List(_ context.Context, userID int64, from, to *time.Time) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := make([]models.Transaction, 0)
	for _, transaction := range r.transactions {
		if transaction.UserID == userID && inRange(transaction.Date, from, to) {
			transactions = append(transactions, transaction)
		}
	}

	sort.Slice(transactions, func(i, j int) bool { return transactions[i].Date.After(transactions[j].Date) })

	return transactions, nil
}
