package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/internal/middleware"
	"github.com/minibanco/minibanco/pkg/config"
	"github.com/minibanco/minibanco/pkg/metrics"
)

// AccountService implements account lifecycle and single-account balance operations.
type AccountService struct {
	cfg         *config.Config
	accountRepo portsrepo.AccountRepositoryFacade
	pixKeyRepo  portsrepo.PixKeyRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
	metrics     *metrics.Collector
}

// NewAccountService creates a new AccountService.
func NewAccountService(cfg *config.Config, repos portsrepo.RepositoryProvider, collector *metrics.Collector) *AccountService {
	return &AccountService{
		cfg:         cfg,
		accountRepo: repos.AccountRepo,
		pixKeyRepo:  repos.PixKeyRepo,
		ledgerRepo:  repos.LedgerRepo,
		metrics:     collector,
	}
}

// GetAccountByID retrieves an account by its identifier.
func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// GetAccountByOwner retrieves the account belonging to an owner identity.
func (s *AccountService) GetAccountByOwner(ctx context.Context, ownerID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByOwner(ctx, ownerID)
}

// CreateAccount creates the single account for an owner identity. The owner's
// tax id is registered as a PIX key in the same breath; in lax mode a collision
// on that key is logged and swallowed so the account still comes up, in strict
// mode the collision rejects the whole creation.
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, ownerID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err == nil {
		return nil, fmt.Errorf("%w: owner %s already has an account", apperrors.ErrDuplicate, ownerID)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if s.cfg.StrictTaxIDKey {
		if _, err := s.pixKeyRepo.FindPixKeyByValue(ctx, req.TaxID); err == nil {
			return nil, fmt.Errorf("%w: tax id already registered as a pix key", apperrors.ErrDuplicate)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID: uuid.NewString(),
		OwnerID:   ownerID,
		Name:      req.Name,
		TaxID:     req.TaxID,
		Balance:   decimal.Zero,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	// Key registration runs before the OPEN entry so a strict-mode failure can
	// still undo the bare account row.
	taxIDKey := domain.PixKey{
		Value:      req.TaxID,
		Type:       domain.KeyTypeTaxID,
		AccountID:  account.AccountID,
		OwnerID:    ownerID,
		HolderName: account.Name,
		CreatedAt:  now,
	}
	if err := s.pixKeyRepo.SavePixKey(ctx, taxIDKey); err != nil {
		if s.cfg.StrictTaxIDKey {
			if delErr := s.accountRepo.DeleteAccount(ctx, account.AccountID); delErr != nil {
				logger.Error("failed to undo account creation after key conflict",
					"account_id", account.AccountID, "error", delErr)
			}
			return nil, err
		}
		logger.Warn("could not register tax id as pix key", "account_id", account.AccountID, "error", err)
	}

	openEntry := domain.Transaction{
		AccountID:   account.AccountID,
		Kind:        domain.EntryOpen,
		Amount:      decimal.Zero,
		Description: "Account opened",
		CreatedAt:   now,
	}
	if err := s.ledgerRepo.AppendEntry(ctx, openEntry); err != nil {
		logger.Error("failed to append OPEN entry", "account_id", account.AccountID, "error", err)
	}

	s.metrics.RecordOperation(string(domain.EntryOpen))
	return &account, nil
}

// Deposit credits the owner's account and appends a DEPOSIT entry.
func (s *AccountService) Deposit(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.Account, error) {
	return s.operate(ctx, ownerID, req, domain.EntryDeposit)
}

// Withdraw debits the owner's account and appends a WITHDRAW entry. The
// database enforces the non-negative balance; the in-memory check here only
// short-circuits the obvious case.
func (s *AccountService) Withdraw(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.Account, error) {
	return s.operate(ctx, ownerID, req, domain.EntryWithdraw)
}

func (s *AccountService) operate(ctx context.Context, ownerID string, req dto.OperationRequest, kind domain.EntryKind) (*domain.Account, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	delta := req.Amount
	description := req.Description
	if kind == domain.EntryWithdraw {
		if account.Balance.LessThan(req.Amount) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrInsufficientFunds, account.AccountID)
		}
		delta = req.Amount.Neg()
		if description == "" {
			description = "Withdrawal"
		}
	} else if description == "" {
		description = "Deposit"
	}

	entry := domain.Transaction{
		AccountID:   account.AccountID,
		Kind:        kind,
		Amount:      req.Amount,
		Description: description,
	}
	updated, err := s.ledgerRepo.RecordOperation(ctx, account.AccountID, delta, entry)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordOperation(string(kind))
	return updated, nil
}
