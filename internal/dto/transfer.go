package dto

import "github.com/shopspring/decimal"

// TransferRequest defines the payload for a transfer addressed by account id.
type TransferRequest struct {
	DestinationAccountID string          `json:"destinationAccountId" binding:"required"`
	Amount               decimal.Decimal `json:"amount" binding:"required"`
	Description          string          `json:"description"`
}

// TransferResponse reports a settled transfer from the sender's perspective.
type TransferResponse struct {
	SourceAccountID      string          `json:"sourceAccountID"`
	DestinationAccountID string          `json:"destinationAccountID"`
	DestinationName      string          `json:"destinationName"`
	Amount               decimal.Decimal `json:"amount"`
	Balance              decimal.Decimal `json:"balance"` // Source balance after the debit
}

// PixTransferRequest defines the payload for a transfer addressed by PIX key.
type PixTransferRequest struct {
	Key         string          `json:"key" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// PixTransferResponse reports a settled PIX transfer from the sender's perspective.
type PixTransferResponse struct {
	Key        string          `json:"key"`
	HolderName string          `json:"holderName"`
	Amount     decimal.Decimal `json:"amount"`
	Balance    decimal.Decimal `json:"balance"` // Source balance after the debit
}
