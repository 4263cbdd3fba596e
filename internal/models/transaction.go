package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a ledger entry row as stored in the database.
// Rows are append-only and never updated.
type Transaction struct {
	EntryID     int64           `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Kind        string          `db:"kind"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}
