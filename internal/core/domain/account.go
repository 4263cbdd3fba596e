package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a bank account within the core domain.
// This is the primary representation used by services.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	OwnerID   string          `json:"ownerID"`   // External identity of the account holder; one account per owner
	Name      string          `json:"name"`      // Holder display name
	TaxID     string          `json:"taxID"`     // Holder tax identifier; also auto-registered as a PIX key
	Balance   decimal.Decimal `json:"balance"`   // Never negative; enforced by the store precondition
	IsActive  bool            `json:"isActive"`  // Soft-deactivation flag, reserved
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
