package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/deposit"
	mDeposit "github.com/x-market/goapi/domain/deposit/mocks"
	mSettlement "github.com/x-market/goapi/domain/settlement/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	creditRepo *mDeposit.Repo
	registries *mSettlement.CurrencyRegistrySet
	registry   *mSettlement.CurrencyRegistry
	subject    *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.creditRepo = &mDeposit.Repo{}
	t.registries = &mSettlement.CurrencyRegistrySet{}
	t.registry = &mSettlement.CurrencyRegistry{}
	t.subject = &impl{
		creditRepo: t.creditRepo,
		registries: t.registries,
	}
}

func (t *testsuite) TestDepositBelowMinimum() {
	err := t.subject.Deposit(mockCtx, "alice", deposit.RentPerSale-1)
	t.ErrorIs(err, domain.ErrDepositBelowMinimum)
	t.creditRepo.AssertNotCalled(t.T(), "Add")
}

func (t *testsuite) TestDeposit() {
	t.creditRepo.
		On("Add", mockCtx, domain.Address("alice"), deposit.RentPerSale).
		Return(&deposit.StorageCredit{Account: "alice", Balance: deposit.RentPerSale}, nil)

	err := t.subject.Deposit(mockCtx, "alice", deposit.RentPerSale)
	t.NoError(err)
	t.creditRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestWithdrawNothing() {
	t.creditRepo.
		On("FindOne", mockCtx, domain.Address("alice")).
		Return(&deposit.StorageCredit{Account: "alice", Balance: 0}, nil)

	withdrawn, err := t.subject.Withdraw(mockCtx, "alice")
	t.NoError(err)
	t.Equal(int64(0), withdrawn)
	t.registries.AssertNotCalled(t.T(), "Get")
}

func (t *testsuite) TestWithdraw() {
	t.creditRepo.
		On("FindOne", mockCtx, domain.Address("alice")).
		Return(&deposit.StorageCredit{Account: "alice", Balance: 30000}, nil)
	t.creditRepo.
		On("ResetIfBalance", mockCtx, domain.Address("alice"), int64(30000)).
		Return(nil)
	t.registries.
		On("Get", mockCtx, domain.NativeCurrency).
		Return(t.registry, nil)
	t.registry.
		On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(30000)).
		Return(nil)

	withdrawn, err := t.subject.Withdraw(mockCtx, "alice")
	t.NoError(err)
	t.Equal(int64(30000), withdrawn)
	t.creditRepo.AssertExpectations(t.T())
	t.registry.AssertExpectations(t.T())
}

func (t *testsuite) TestWithdrawTransferFailureRecredits() {
	t.creditRepo.
		On("FindOne", mockCtx, domain.Address("alice")).
		Return(&deposit.StorageCredit{Account: "alice", Balance: 30000}, nil)
	t.creditRepo.
		On("ResetIfBalance", mockCtx, domain.Address("alice"), int64(30000)).
		Return(nil)
	t.registries.
		On("Get", mockCtx, domain.NativeCurrency).
		Return(t.registry, nil)
	t.registry.
		On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(30000)).
		Return(domain.ErrInternalServerError)
	t.creditRepo.
		On("Add", mockCtx, domain.Address("alice"), int64(30000)).
		Return(&deposit.StorageCredit{Account: "alice", Balance: 30000}, nil)

	_, err := t.subject.Withdraw(mockCtx, "alice")
	t.Error(err)
	t.creditRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestWithdrawConflict() {
	t.creditRepo.
		On("FindOne", mockCtx, domain.Address("alice")).
		Return(&deposit.StorageCredit{Account: "alice", Balance: 30000}, nil)
	t.creditRepo.
		On("ResetIfBalance", mockCtx, domain.Address("alice"), int64(30000)).
		Return(domain.ErrWithdrawConflict)

	_, err := t.subject.Withdraw(mockCtx, "alice")
	t.ErrorIs(err, domain.ErrWithdrawConflict)
	t.registries.AssertNotCalled(t.T(), "Get")
}

func (t *testsuite) TestReserve() {
	t.creditRepo.
		On("DebitIfCovered", mockCtx, domain.Address("alice"), 2*deposit.RentPerSale).
		Return(nil)

	t.NoError(t.subject.Reserve(mockCtx, "alice", 2))
	t.creditRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestReserveInsufficient() {
	t.creditRepo.
		On("DebitIfCovered", mockCtx, domain.Address("alice"), deposit.RentPerSale).
		Return(domain.ErrInsufficientStorageCredit)

	err := t.subject.Reserve(mockCtx, "alice", 1)
	t.ErrorIs(err, domain.ErrInsufficientStorageCredit)
}

func (t *testsuite) TestRelease() {
	t.creditRepo.
		On("Add", mockCtx, domain.Address("alice"), deposit.RentPerSale).
		Return(&deposit.StorageCredit{Account: "alice", Balance: deposit.RentPerSale}, nil)

	t.NoError(t.subject.Release(mockCtx, "alice", 1))
	t.creditRepo.AssertExpectations(t.T())
}

func (t *testsuite) TestMinimumBalance() {
	t.Equal(deposit.RentPerSale, t.subject.MinimumBalance())
}
