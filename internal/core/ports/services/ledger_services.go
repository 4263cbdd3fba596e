package services

import (
	"context"

	"github.com/minibanco/minibanco/internal/dto"
)

// LedgerSvcFacade defines the read-only statement operations.
type LedgerSvcFacade interface {
	// GetStatement retrieves the most recent ledger entries for an account,
	// newest first, bounded by limit (clamped to the configured cap).
	GetStatement(ctx context.Context, accountID string, limit int) (*dto.StatementResponse, error)

	// GetStatementByOwner is GetStatement addressed by owner identity.
	GetStatementByOwner(ctx context.Context, ownerID string, limit int) (*dto.StatementResponse, error)
}
