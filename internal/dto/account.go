package dto

import (
	"time"

	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for creating an account.
// The tax id is validated by the custom "taxid" binding (digits only).
type CreateAccountRequest struct {
	Name  string `json:"name" binding:"required"`
	TaxID string `json:"taxId" binding:"required,taxid"`
}

// AccountResponse defines the account representation returned by the API.
type AccountResponse struct {
	AccountID string          `json:"accountID"`
	OwnerID   string          `json:"ownerID"`
	Name      string          `json:"name"`
	TaxID     string          `json:"taxId"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToAccountResponse converts a domain Account to an AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		OwnerID:   a.OwnerID,
		Name:      a.Name,
		TaxID:     a.TaxID,
		Balance:   a.Balance,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// BalanceResponse is the public balance lookup representation.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToBalanceResponse converts a domain Account to a BalanceResponse.
func ToBalanceResponse(a *domain.Account) BalanceResponse {
	return BalanceResponse{
		AccountID: a.AccountID,
		Name:      a.Name,
		Balance:   a.Balance,
		UpdatedAt: a.UpdatedAt,
	}
}

// MyAccountResponse combines the caller's account with its registered PIX keys.
type MyAccountResponse struct {
	AccountResponse
	PixKeys []PixKeyResponse `json:"pixKeys"`
}
