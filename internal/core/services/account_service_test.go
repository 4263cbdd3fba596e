package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/minibanco/minibanco/internal/apperrors"
	"github.com/minibanco/minibanco/internal/core/domain"
	portssvc "github.com/minibanco/minibanco/internal/core/ports/services"
	"github.com/minibanco/minibanco/internal/core/services"
	"github.com/minibanco/minibanco/internal/dto"
	"github.com/minibanco/minibanco/pkg/config"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockPixKeyRepo  *MockPixKeyRepository
	mockLedgerRepo  *MockLedgerRepository
	cfg             *config.Config
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPixKeyRepo = new(MockPixKeyRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.cfg = &config.Config{StatementLimit: 30}
	suite.service = services.NewAccountService(suite.cfg,
		newMockProvider(suite.mockAccountRepo, suite.mockPixKeyRepo, suite.mockLedgerRepo), nil)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateAccountRequest{Name: "Ana", TaxID: "12345678900"}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.OwnerID == ownerID && a.Name == req.Name && a.TaxID == req.TaxID &&
			a.Balance.IsZero() && a.IsActive
	})).Return(nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.MatchedBy(func(e domain.Transaction) bool {
		return e.Kind == domain.EntryOpen && e.Amount.IsZero()
	})).Return(nil).Once()
	suite.mockPixKeyRepo.On("SavePixKey", ctx, mock.MatchedBy(func(k domain.PixKey) bool {
		return k.Value == req.TaxID && k.Type == domain.KeyTypeTaxID && k.HolderName == req.Name
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(ownerID, account.OwnerID)
	suite.NotEmpty(account.AccountID)
	suite.True(account.Balance.IsZero())
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockPixKeyRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OwnerAlreadyHasAccount() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	existing := &domain.Account{AccountID: uuid.NewString(), OwnerID: ownerID}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(existing, nil).Once()

	account, err := suite.service.CreateAccount(ctx, dto.CreateAccountRequest{Name: "Ana", TaxID: "12345678900"}, ownerID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_TaxIDKeyCollisionSwallowed() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateAccountRequest{Name: "Bruno", TaxID: "98765432100"}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockLedgerRepo.On("AppendEntry", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	suite.mockPixKeyRepo.On("SavePixKey", ctx, mock.AnythingOfType("domain.PixKey")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, req, ownerID)

	// Lax mode: the account comes up even though the tax id key was taken.
	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.mockPixKeyRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StrictTaxIDKeyRejects() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateAccountRequest{Name: "Bruno", TaxID: "98765432100"}
	suite.cfg.StrictTaxIDKey = true

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPixKeyRepo.On("FindPixKeyByValue", ctx, req.TaxID).Return(&domain.PixKey{Value: req.TaxID}, nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, ownerID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_StrictModeUndoesAccountOnKeyRace() {
	// The pre-check sees no key, but a concurrent registration claims the tax
	// id before SavePixKey runs. The half-created account must not survive.
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.CreateAccountRequest{Name: "Bruno", TaxID: "98765432100"}
	suite.cfg.StrictTaxIDKey = true

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPixKeyRepo.On("FindPixKeyByValue", ctx, req.TaxID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockPixKeyRepo.On("SavePixKey", ctx, mock.AnythingOfType("domain.PixKey")).Return(apperrors.ErrDuplicate).Once()
	suite.mockAccountRepo.On("DeleteAccount", ctx, mock.AnythingOfType("string")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, ownerID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	account := &domain.Account{AccountID: accountID, OwnerID: ownerID, Balance: decimal.Zero}
	credited := &domain.Account{AccountID: accountID, OwnerID: ownerID, Balance: amount}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("RecordOperation", ctx, accountID, amount, mock.MatchedBy(func(e domain.Transaction) bool {
		return e.Kind == domain.EntryDeposit && e.Amount.Equal(amount) && e.Description == "Deposit"
	})).Return(credited, nil).Once()

	updated, err := suite.service.Deposit(ctx, ownerID, dto.OperationRequest{Amount: amount})

	suite.Require().NoError(err)
	suite.True(updated.Balance.Equal(amount))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeposit_NonPositiveAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		updated, err := suite.service.Deposit(ctx, uuid.NewString(), dto.OperationRequest{Amount: amount})
		suite.Require().Error(err)
		suite.Nil(updated)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(40)
	account := &domain.Account{AccountID: accountID, OwnerID: ownerID, Balance: decimal.NewFromInt(100)}
	debited := &domain.Account{AccountID: accountID, OwnerID: ownerID, Balance: decimal.NewFromInt(60)}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("RecordOperation", ctx, accountID, amount.Neg(), mock.MatchedBy(func(e domain.Transaction) bool {
		return e.Kind == domain.EntryWithdraw && e.Amount.Equal(amount)
	})).Return(debited, nil).Once()

	updated, err := suite.service.Withdraw(ctx, ownerID, dto.OperationRequest{Amount: amount})

	suite.Require().NoError(err)
	suite.True(updated.Balance.Equal(decimal.NewFromInt(60)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	account := &domain.Account{AccountID: uuid.NewString(), OwnerID: ownerID, Balance: decimal.NewFromInt(10)}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(account, nil).Once()

	updated, err := suite.service.Withdraw(ctx, ownerID, dto.OperationRequest{Amount: decimal.NewFromInt(50)})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "RecordOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestWithdraw_RepoInsufficientFunds() {
	// The advisory check passes but a concurrent debit drained the account;
	// the repository's conditional update reports the authoritative failure.
	ctx := context.Background()
	ownerID := uuid.NewString()
	accountID := uuid.NewString()
	amount := decimal.NewFromInt(50)
	account := &domain.Account{AccountID: accountID, OwnerID: ownerID, Balance: decimal.NewFromInt(100)}

	suite.mockAccountRepo.On("FindAccountByOwner", ctx, ownerID).Return(account, nil).Once()
	suite.mockLedgerRepo.On("RecordOperation", ctx, accountID, amount.Neg(), mock.AnythingOfType("domain.Transaction")).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	updated, err := suite.service.Withdraw(ctx, ownerID, dto.OperationRequest{Amount: amount})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
