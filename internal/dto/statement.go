package dto

import (
	"time"

	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the ledger entry representation returned by the API.
type TransactionResponse struct {
	EntryID     int64           `json:"entryID"`
	Kind        string          `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		EntryID:     t.EntryID,
		Kind:        string(t.Kind),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// StatementResponse wraps an account's recent ledger entries, newest first.
type StatementResponse struct {
	AccountID    string                `json:"accountID"`
	Name         string                `json:"name"`
	Balance      decimal.Decimal       `json:"balance"`
	Transactions []TransactionResponse `json:"transactions"`
}
