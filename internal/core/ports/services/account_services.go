package services

import (
	"context"

	"github.com/minibanco/minibanco/internal/core/domain"
	"github.com/minibanco/minibanco/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// GetAccountByOwner retrieves the account belonging to an owner identity.
	GetAccountByOwner(ctx context.Context, ownerID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount creates the single account for an owner identity, writes
	// its OPEN ledger entry and best-effort registers the tax id as a PIX key.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, ownerID string) (*domain.Account, error)
}

// AccountOperationSvc defines single-account balance operations.
type AccountOperationSvc interface {
	// Deposit credits the owner's account and appends a DEPOSIT entry.
	Deposit(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.Account, error)

	// Withdraw debits the owner's account, subject to the non-negative balance
	// precondition, and appends a WITHDRAW entry.
	Withdraw(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountOperationSvc
}
