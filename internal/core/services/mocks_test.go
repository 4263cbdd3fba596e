package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/minibanco/minibanco/internal/core/domain"
	portsrepo "github.com/minibanco/minibanco/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByOwner(ctx context.Context, ownerID string) (*domain.Account, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDelta(ctx context.Context, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, accountID, delta, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceDeltaInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, now time.Time) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID, delta, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

// --- Mock PixKeyRepository ---
type MockPixKeyRepository struct {
	mock.Mock
}

func (m *MockPixKeyRepository) SavePixKey(ctx context.Context, key domain.PixKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockPixKeyRepository) DeletePixKey(ctx context.Context, value string, ownerID string) error {
	args := m.Called(ctx, value, ownerID)
	return args.Error(0)
}

func (m *MockPixKeyRepository) FindPixKeyByValue(ctx context.Context, value string) (*domain.PixKey, error) {
	args := m.Called(ctx, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PixKey), args.Error(1)
}

func (m *MockPixKeyRepository) ListPixKeysByAccount(ctx context.Context, accountID string) ([]domain.PixKey, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PixKey), args.Error(1)
}

func (m *MockPixKeyRepository) CountPixKeysByAccount(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) AppendEntry(ctx context.Context, entry domain.Transaction) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerRepository) RecordOperation(ctx context.Context, accountID string, delta decimal.Decimal, entry domain.Transaction) (*domain.Account, error) {
	args := m.Called(ctx, accountID, delta, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) RecordTransfer(ctx context.Context, sourceAccountID, destAccountID string, amount decimal.Decimal, outEntry, inEntry domain.Transaction) (*domain.Account, error) {
	args := m.Called(ctx, sourceAccountID, destAccountID, amount, outEntry, inEntry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByAccount(ctx context.Context, accountID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var (
	_ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)
	_ portsrepo.PixKeyRepositoryFacade  = (*MockPixKeyRepository)(nil)
	_ portsrepo.LedgerRepositoryFacade  = (*MockLedgerRepository)(nil)
)

func newMockProvider(accountRepo *MockAccountRepository, pixKeyRepo *MockPixKeyRepository, ledgerRepo *MockLedgerRepository) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: accountRepo,
		PixKeyRepo:  pixKeyRepo,
		LedgerRepo:  ledgerRepo,
	}
}
