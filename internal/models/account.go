package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account row as stored in the database.
type Account struct {
	AccountID string          `db:"account_id"`
	OwnerID   string          `db:"owner_id"` // Unique; one account per owner
	Name      string          `db:"name"`
	TaxID     string          `db:"tax_id"`
	Balance   decimal.Decimal `db:"balance"`
	IsActive  bool            `db:"is_active"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
