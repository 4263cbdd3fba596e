package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByOwner retrieves the single account belonging to an owner
	// identity via the owner index.
	FindAccountByOwner(ctx context.Context, ownerID string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account row. Only valid before the account has
	// ledger entries; used to compensate a failed multi-step creation.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountBalanceMutator defines the atomic balance mutation primitive.
type AccountBalanceMutator interface {
	// ApplyBalanceDelta atomically adds delta to the account balance, subject to
	// the precondition balance + delta >= 0, and returns the post-mutation
	// account. The check and the write are a single conditional statement; a
	// failed precondition reports apperrors.ErrInsufficientFunds.
	ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error)

	// ApplyBalanceDeltaInTx is ApplyBalanceDelta executed within a caller-owned
	// database transaction.
	ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountBalanceMutator
}
