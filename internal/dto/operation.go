package dto

import (
	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OperationRequest defines the payload for deposits and withdrawals.
// Amount positivity is validated by the service, not the binding, so the
// failure carries the invalid-amount kind rather than a generic binding error.
type OperationRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// OperationResponse reports the post-mutation balance of an operation.
type OperationResponse struct {
	AccountID string          `json:"accountID"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToOperationResponse builds an OperationResponse from the mutated account.
func ToOperationResponse(a *domain.Account, kind domain.EntryKind, amount decimal.Decimal) OperationResponse {
	return OperationResponse{
		AccountID: a.AccountID,
		Kind:      string(kind),
		Amount:    amount,
		Balance:   a.Balance,
	}
}
