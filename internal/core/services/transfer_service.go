package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/middleware"
	"github.com/minibanco/minibanco/pkg/metrics"
)

// ErrSelfTransfer reports a transfer whose source and destination are the same account.
var ErrSelfTransfer = fmt.Errorf("%w: cannot transfer to own account", apperrors.ErrValidation)

// TransferService implements the transfer engine. Both entry points reduce to
// one move-funds primitive backed by a single database transaction.
type TransferService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	pixKeyRepo  portsrepo.PixKeyRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	metrics     *metrics.Collector
}

// NewTransferService creates a new TransferService.
func NewTransferService(repos portsrepo.RepositoryProvider, collector *metrics.Collector) *TransferService {
	return &TransferService{
		accountRepo: repos.AccountRepo,
		pixKeyRepo:  repos.PixKeyRepo,
		ledgerRepo:  repos.LedgerRepo,
		metrics:     collector,
	}
}

// TransferByID moves funds from the owner's account to a destination addressed
// by account id.
func (s *TransferService) TransferByID(ctx context.Context, ownerID string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	source, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	dest, err := s.accountRepo.FindAccountByID(ctx, req.DestinationAccountID)
	if err != nil {
		return nil, err
	}

	updated, err := s.moveFunds(ctx, source, dest, req.Amount, req.Description, "Transfer", domain.EntryTransferOut, domain.EntryTransferIn)
	if err != nil {
		return nil, err
	}
	return &dto.TransferResponse{
		SourceAccountID:      updated.AccountID,
		DestinationAccountID: dest.AccountID,
		DestinationName:      dest.Name,
		Amount:               req.Amount,
		Balance:              updated.Balance,
	}, nil
}

// TransferByKey resolves the destination through the PIX key directory and
// moves funds to it.
func (s *TransferService) TransferByKey(ctx context.Context, ownerID string, req dto.PixTransferRequest) (*dto.PixTransferResponse, error) {
	source, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	key, err := s.pixKeyRepo.FindPixKeyByValue(ctx, req.Key)
	if err != nil {
		return nil, err
	}
	dest, err := s.accountRepo.FindAccountByID(ctx, key.AccountID)
	if err != nil {
		return nil, err
	}

	updated, err := s.moveFunds(ctx, source, dest, req.Amount, req.Description, "PIX transfer", domain.EntryPixOut, domain.EntryPixIn)
	if err != nil {
		return nil, err
	}
	return &dto.PixTransferResponse{
		Key:        key.Value,
		HolderName: key.HolderName,
		Amount:     req.Amount,
		Balance:    updated.Balance,
	}, nil
}

// moveFunds validates the movement and hands it to the ledger repository,
// which settles debit, credit and both entries in one transaction.
func (s *TransferService) moveFunds(ctx context.Context, source, dest *domain.Account, amount decimal.Decimal, description, defaultDescription string, outKind, inKind domain.EntryKind) (*domain.Account, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if source.AccountID == dest.AccountID {
		return nil, ErrSelfTransfer
	}
	// Advisory only; the conditional debit inside the transaction is what
	// actually prevents overdraw under concurrency.
	if source.Balance.LessThan(amount) {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, source.AccountID)
	}

	if description == "" {
		description = defaultDescription
	}
	outEntry := domain.Transaction{
		AccountID:   source.AccountID,
		Kind:        outKind,
		Amount:      amount,
		Description: fmt.Sprintf("%s to %s", description, dest.Name),
	}
	inEntry := domain.Transaction{
		AccountID:   dest.AccountID,
		Kind:        inKind,
		Amount:      amount,
		Description: fmt.Sprintf("%s from %s", description, source.Name),
	}

	start := time.Now()
	updated, err := s.ledgerRepo.RecordTransfer(ctx, source.AccountID, dest.AccountID, amount, outEntry, inEntry)
	s.metrics.RecordTransfer(time.Since(start), err == nil)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("transfer failed",
			"source_account_id", source.AccountID,
			"dest_account_id", dest.AccountID,
			"error", err)
		return nil, err
	}
	s.metrics.RecordOperation(string(outKind))
	s.metrics.RecordOperation(string(inKind))
	return updated, nil
}
