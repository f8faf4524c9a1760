package models

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// Allowed transaction types.
const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a single financial record. Amount is expected positive for
// both types; the store enforces no sign invariant.
type Transaction struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"userId"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
}

// InsertTransaction is the insertable shape of Transaction.
type InsertTransaction struct {
	UserID      int64           `json:"userId"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
}
