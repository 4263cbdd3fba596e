package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/core/services"
	"github.com/minibanco/minibanco/pkg/config"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	cfg := &config.Config{StatementLimit: 30}
	suite.service = services.NewLedgerService(cfg,
		newMockProvider(suite.mockAccountRepo, new(MockPixKeyRepository), suite.mockLedgerRepo))
}

func (suite *LedgerServiceTestSuite) TestGetStatement_Success() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Ana", Balance: decimal.NewFromInt(70)}
	entries := []domain.Transaction{
		{EntryID: 3, AccountID: account.AccountID, Kind: domain.EntryTransferOut, Amount: decimal.NewFromInt(30)},
		{EntryID: 2, AccountID: account.AccountID, Kind: domain.EntryDeposit, Amount: decimal.NewFromInt(100)},
		{EntryID: 1, AccountID: account.AccountID, Kind: domain.EntryOpen, Amount: decimal.Zero},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByAccount", ctx, account.AccountID, 30).Return(entries, nil).Once()

	resp, err := suite.service.GetStatement(ctx, account.AccountID, 0)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal("Ana", resp.Name)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(70)))
	suite.Require().Len(resp.Transactions, 3)
	suite.Equal(int64(3), resp.Transactions[0].EntryID)
	suite.Equal(string(domain.EntryOpen), resp.Transactions[2].Kind)
}

func (suite *LedgerServiceTestSuite) TestGetStatement_ClampsLimit() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Name: "Ana"}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Twice()
	suite.mockLedgerRepo.On("ListEntriesByAccount", ctx, account.AccountID, 30).Return([]domain.Transaction{}, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByAccount", ctx, account.AccountID, 10).Return([]domain.Transaction{}, nil).Once()

	_, err := suite.service.GetStatement(ctx, account.AccountID, 500)
	suite.Require().NoError(err)

	_, err = suite.service.GetStatement(ctx, account.AccountID, 10)
	suite.Require().NoError(err)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetStatement_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetStatement(ctx, accountID, 0)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestGetStatementByOwner_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), OwnerID: ownerID, Name: "Ana"}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(account, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("ListEntriesByAccount", ctx, account.AccountID, 30).Return([]domain.Transaction{}, nil).Once()

	resp, err := suite.service.GetStatementByOwner(ctx, ownerID, 0)

	suite.Require().NoError(err)
	suite.Equal(account.AccountID, resp.AccountID)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
