package repositories

import (
	"context"

	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for ledger entries
type LedgerReader interface {
	// ListEntriesByAccount retrieves up to limit entries for the account,
	// ordered newest first.
	ListEntriesByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error)
}

// LedgerWriter defines the append-only write operations for ledger entries.
// Entry IDs are assigned by the repository.
type LedgerWriter interface {
	// AppendEntry writes a single entry with no balance mutation (OPEN entries).
	AppendEntry(ctx context.Context, entry domain.Transaction) error

	// RecordOperation applies a balance delta to one account and appends its
	// ledger entry within a single database transaction. Returns the
	// post-mutation account.
	RecordOperation(ctx context.Context, accountID string, delta decimal.Decimal, entry domain.Transaction) (*domain.Account, error)

	// RecordTransfer debits the source (conditionally), credits the destination
	// (unconditionally) and appends both entries, all within a single database
	// transaction. A failed debit precondition aborts before the credit and
	// reports apperrors.ErrInsufficientFunds. Returns the post-debit source
	// account.
	RecordTransfer(ctx context.Context, sourceAccountID, destAccountID string, amount decimal.Decimal, outEntry, inEntry domain.Transaction) (*domain.Account, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
