package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind identifies the balance-affecting event a ledger entry records.
type EntryKind string

const (
	EntryOpen        EntryKind = "OPEN"
	EntryDeposit     EntryKind = "DEPOSIT"
	EntryWithdraw    EntryKind = "WITHDRAW"
	EntryTransferOut EntryKind = "TRANSFER_OUT"
	EntryTransferIn  EntryKind = "TRANSFER_IN"
	EntryPixOut      EntryKind = "PIX_OUT"
	EntryPixIn       EntryKind = "PIX_IN"
)

// IsValid reports whether the kind is one of the recognized entry kinds.
func (k EntryKind) IsValid() bool {
	switch k {
	case EntryOpen, EntryDeposit, EntryWithdraw, EntryTransferOut, EntryTransferIn, EntryPixOut, EntryPixIn:
		return true
	}
	return false
}

// Transaction is one immutable ledger entry belonging to a single account.
// Entries are append-only; a transfer produces exactly two of them, one per side.
type Transaction struct {
	EntryID     int64           `json:"entryID"` // Snowflake ID: unique and time-ordered
	AccountID   string          `json:"accountID"`
	Kind        EntryKind       `json:"kind"`
	Amount      decimal.Decimal `json:"amount"` // Non-negative; zero only for OPEN
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
