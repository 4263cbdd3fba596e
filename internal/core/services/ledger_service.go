package services

import (
	"context"

	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/pkg/config"
)

// LedgerService implements the read-only statement operations.
type LedgerService struct {
	cfg         *config.Config
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(cfg *config.Config, repos portsrepo.RepositoryProvider) *LedgerService {
	return &LedgerService{
		cfg:         cfg,
		accountRepo: repos.AccountRepo,
		ledgerRepo:  repos.LedgerRepo,
	}
}

// GetStatement retrieves the most recent ledger entries for an account,
// newest first. The limit is clamped to the configured cap.
func (s *LedgerService) GetStatement(ctx context.Context, accountID string, limit int) (*dto.StatementResponse, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > s.cfg.StatementLimit {
		limit = s.cfg.StatementLimit
	}
	entries, err := s.ledgerRepo.ListEntriesByAccount(ctx, account.AccountID, limit)
	if err != nil {
		return nil, err
	}

	transactions := make([]dto.TransactionResponse, len(entries))
	for i := range entries {
		transactions[i] = dto.ToTransactionResponse(&entries[i])
	}
	return &dto.StatementResponse{
		AccountID:    account.AccountID,
		Name:         account.Name,
		Balance:      account.Balance,
		Transactions: transactions,
	}, nil
}

// GetStatementByOwner is GetStatement addressed by owner identity.
func (s *LedgerService) GetStatementByOwner(ctx context.Context, ownerID string, limit int) (*dto.StatementResponse, error) {
	account, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.GetStatement(ctx, account.AccountID, limit)
}
