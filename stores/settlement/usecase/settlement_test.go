package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-market/goapi/base/ctx"
	"github.com/x-market/goapi/domain"
	"github.com/x-market/goapi/domain/payout"
	"github.com/x-market/goapi/domain/sale"
	mSale "github.com/x-market/goapi/domain/sale/mocks"
	"github.com/x-market/goapi/domain/settlement"
	mSettlement "github.com/x-market/goapi/domain/settlement/mocks"
	mQuery "github.com/x-market/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mongo         *mQuery.Mongo
	attemptRepo   *mSettlement.AttemptRepo
	saleRegistry  *mSale.Registry
	saleUC        *mSale.UseCase
	assetRegistry *mSettlement.AssetRegistry
	registries    *mSettlement.CurrencyRegistrySet
	registry      *mSettlement.CurrencyRegistry
	subject       *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mongo = &mQuery.Mongo{}
	t.attemptRepo = &mSettlement.AttemptRepo{}
	t.saleRegistry = &mSale.Registry{}
	t.saleUC = &mSale.UseCase{}
	t.assetRegistry = &mSettlement.AssetRegistry{}
	t.registries = &mSettlement.CurrencyRegistrySet{}
	t.registry = &mSettlement.CurrencyRegistry{}
	t.mongo.
		On("RunWithTransaction", mockCtx, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) })
	t.subject = &impl{
		mongo:         t.mongo,
		attemptRepo:   t.attemptRepo,
		saleRegistry:  t.saleRegistry,
		saleUC:        t.saleUC,
		assetRegistry: t.assetRegistry,
		registries:    t.registries,
	}
}

func (t *testsuite) listedSale() *sale.Sale {
	return &sale.Sale{
		SaleId:     sale.SaleId{Collection: "nft", TokenId: "1"},
		Owner:      "alice",
		ApprovalId: 42,
		Conditions: []sale.Condition{{Currency: domain.NativeCurrency, Price: "1000"}},
		Royalties:  []payout.Royalty{{Account: "royal", Bps: 2000}},
	}
}

func (t *testsuite) TestPurchaseDispatchesTransfer() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.attemptRepo.On("Create", mockCtx, mock.Anything).Return(nil)
	t.assetRegistry.
		On("TransferWithPayout", mockCtx, mock.MatchedBy(func(req *settlement.TransferRequest) bool {
			return req.AttemptId == 7 &&
				req.From == domain.Address("alice") &&
				req.To == domain.Address("bob") &&
				req.ApprovalId == 42 &&
				req.Price.Cmp(big.NewInt(1000)) == 0 &&
				req.MaxRecipients == payout.MaxRecipients
		})).
		Return(nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "1000",
		`{"collection":"nft","tokenId":"1","kind":"buy"}`)
	t.NoError(err)
	t.Equal("0", unused)
	t.assetRegistry.AssertExpectations(t.T())
}

func (t *testsuite) TestPurchaseReturnsExcessAsUnused() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.attemptRepo.On("Create", mockCtx, mock.Anything).Return(nil)
	t.assetRegistry.On("TransferWithPayout", mockCtx, mock.Anything).Return(nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "1500",
		`{"collection":"nft","tokenId":"1"}`)
	t.NoError(err)
	t.Equal("500", unused)
}

func (t *testsuite) TestPurchaseUndecodableMessage() {
	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "1000", "{{{")
	t.ErrorIs(err, domain.ErrInvalidMessage)
	t.Equal("1000", unused)
	t.saleRegistry.AssertNotCalled(t.T(), "Lock")
}

func (t *testsuite) TestPurchaseInsufficientDeposit() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "900",
		`{"collection":"nft","tokenId":"1"}`)
	t.ErrorIs(err, domain.ErrPriceMismatch)
	t.Equal("900", unused)
	t.saleRegistry.AssertExpectations(t.T())
	t.attemptRepo.AssertNotCalled(t.T(), "Create")
}

func (t *testsuite) TestPurchasePinnedPriceMoved() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)

	_, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "2000",
		`{"collection":"nft","tokenId":"1","price":"900"}`)
	t.ErrorIs(err, domain.ErrPriceMismatch)
}

func (t *testsuite) TestPurchasePinnedPriceComparedNumerically() {
	// "01000" and "1000" are the same amount; leading zeros must not read
	// as a moved price
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.attemptRepo.On("Create", mockCtx, mock.Anything).Return(nil)
	t.assetRegistry.On("TransferWithPayout", mockCtx, mock.Anything).Return(nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "1000",
		`{"collection":"nft","tokenId":"1","price":"01000"}`)
	t.NoError(err)
	t.Equal("0", unused)
	t.saleRegistry.AssertNotCalled(t.T(), "Unlock")
}

func (t *testsuite) TestPurchaseLockedSale() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(8), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(8)).Return(nil, domain.ErrListingLocked)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "1000",
		`{"collection":"nft","tokenId":"1"}`)
	t.ErrorIs(err, domain.ErrListingLocked)
	t.Equal("1000", unused)
}

func (t *testsuite) TestBidKindDelegatesToBidBook() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	displaced := &sale.Bid{Currency: domain.NativeCurrency, Bidder: "carol", Amount: "400"}
	t.saleUC.
		On("SubmitBid", mockCtx, id, mock.MatchedBy(func(b sale.Bid) bool {
			return b.Bidder == domain.Address("bob") && b.Amount == "500"
		})).
		Return(displaced, nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("carol"), big.NewInt(400)).Return(nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "500",
		`{"collection":"nft","tokenId":"1","kind":"bid"}`)
	t.NoError(err)
	t.Equal("0", unused)
	t.registry.AssertExpectations(t.T())
	t.saleRegistry.AssertNotCalled(t.T(), "Lock")
}

func (t *testsuite) TestBidAmountStoredCanonically() {
	// the ledger reports amounts verbatim; the book must only ever hold the
	// canonical decimal form
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.saleUC.
		On("SubmitBid", mockCtx, id, mock.MatchedBy(func(b sale.Bid) bool {
			return b.Amount == "500"
		})).
		Return(nil, nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "0500",
		`{"collection":"nft","tokenId":"1","kind":"bid"}`)
	t.NoError(err)
	t.Equal("0", unused)
	t.saleUC.AssertExpectations(t.T())
}

func (t *testsuite) TestAcceptBidNotOwner() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	s := t.listedSale()
	s.Bids = []sale.Bid{{Currency: domain.NativeCurrency, Bidder: "bob", Amount: "800"}}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(s, nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)

	err := t.subject.AcceptBid(mockCtx, "mallory", id, domain.NativeCurrency)
	t.ErrorIs(err, domain.ErrNotOwner)
	t.saleRegistry.AssertExpectations(t.T())
}

func (t *testsuite) TestAcceptBidNoBids() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)

	err := t.subject.AcceptBid(mockCtx, "alice", id, domain.NativeCurrency)
	t.ErrorIs(err, domain.ErrNoBids)
}

func (t *testsuite) TestAcceptBidDispatchesAtBidPrice() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	s := t.listedSale()
	s.Bids = []sale.Bid{{Currency: domain.NativeCurrency, Bidder: "bob", Amount: "800"}}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(s, nil)
	t.attemptRepo.
		On("Create", mockCtx, mock.MatchedBy(func(a *settlement.Attempt) bool {
			return a.Buyer == domain.Address("bob") && a.Price == "800" && a.FromBid
		})).
		Return(nil)
	t.assetRegistry.
		On("TransferWithPayout", mockCtx, mock.MatchedBy(func(req *settlement.TransferRequest) bool {
			return req.Price.Cmp(big.NewInt(800)) == 0 && req.To == domain.Address("bob")
		})).
		Return(nil)

	t.NoError(t.subject.AcceptBid(mockCtx, "alice", id, domain.NativeCurrency))
	t.assetRegistry.AssertExpectations(t.T())
}

func awaitingAttempt() *settlement.Attempt {
	return &settlement.Attempt{
		AttemptId:  7,
		Collection: "nft",
		TokenId:    "1",
		Buyer:      "bob",
		Seller:     "alice",
		Currency:   domain.NativeCurrency,
		Price:      "1000",
		Royalties:  []payout.Royalty{{Account: "royal", Bps: 2000}},
		State:      settlement.StateAwaitingAssetTransfer,
	}
}

func (t *testsuite) TestResolveFinalizedWithLocalPayout() {
	attempt := awaitingAttempt()
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid(nil), nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	// floor(1000*2000/10000) = 200 to the royalty account, remainder to seller
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(200)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(800)).Return(nil)

	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true}))
	t.registry.AssertExpectations(t.T())
}

func (t *testsuite) TestResolveFinalizedWithLedgerPayout() {
	attempt := awaitingAttempt()
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid(nil), nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(300)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(700)).Return(nil)

	result := &settlement.TransferResult{
		Ok: true,
		Payout: payout.Payout{
			"royal": big.NewInt(300),
			"alice": big.NewInt(700),
		},
	}
	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, result))
	t.registry.AssertExpectations(t.T())
}

func (t *testsuite) TestResolveFinalizedRejectsShortPayout() {
	// ledger payout not summing to the price falls back to local computation
	attempt := awaitingAttempt()
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid(nil), nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(200)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(800)).Return(nil)

	result := &settlement.TransferResult{
		Ok:     true,
		Payout: payout.Payout{"alice": big.NewInt(1)},
	}
	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, result))
	t.registry.AssertExpectations(t.T())
}

func (t *testsuite) TestResolveFinalizedRefundsDisplacedBids() {
	attempt := awaitingAttempt()
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid{{Currency: domain.NativeCurrency, Bidder: "carol", Amount: "900"}}, nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(200)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(800)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("carol"), big.NewInt(900)).Return(nil)

	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true}))
	t.registry.AssertExpectations(t.T())
}

func (t *testsuite) TestResolveFinalizedBidAttemptSkipsConsumedBid() {
	attempt := awaitingAttempt()
	attempt.FromBid = true
	attempt.Price = "800"
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid{
			{Currency: domain.NativeCurrency, Bidder: "bob", Amount: "800"},
			{Currency: domain.NativeCurrency, Bidder: "carol", Amount: "700"},
		}, nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(160)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(640)).Return(nil)
	// the consumed winning bid is settled, not refunded; only carol's comes back
	t.registry.On("Transfer", mockCtx, domain.Address("carol"), big.NewInt(700)).Return(nil)

	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true}))
	t.registry.AssertExpectations(t.T())
	t.registry.AssertNumberOfCalls(t.T(), "Transfer", 3)
}

func (t *testsuite) TestResolveFinalizedBidAttemptMatchesConsumedBidNumerically() {
	// a bid retained before canonicalization may carry leading zeros; it is
	// still the consumed winning bid, not a displaced one to refund
	attempt := awaitingAttempt()
	attempt.FromBid = true
	attempt.Price = "800"
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid{
			{Currency: domain.NativeCurrency, Bidder: "bob", Amount: "0800"},
			{Currency: domain.NativeCurrency, Bidder: "carol", Amount: "700"},
		}, nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(160)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(640)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("carol"), big.NewInt(700)).Return(nil)

	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true}))
	t.registry.AssertExpectations(t.T())
	// bob keeps the asset; his bid funds settled the purchase
	t.registry.AssertNumberOfCalls(t.T(), "Transfer", 3)
}

func (t *testsuite) TestResolveRolledBackRefundsBuyer() {
	attempt := awaitingAttempt()
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateRolledBack).Return(nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("bob"), big.NewInt(1000)).Return(nil)

	result := &settlement.TransferResult{Ok: false, Reason: "approval revoked"}
	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, result))
	t.registry.AssertExpectations(t.T())
	t.saleRegistry.AssertNotCalled(t.T(), "FinalizePurchase")
}

func (t *testsuite) TestResolveRolledBackBidAttemptKeepsFunds() {
	attempt := awaitingAttempt()
	attempt.FromBid = true
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateRolledBack).Return(nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)

	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: false}))
	t.registries.AssertNotCalled(t.T(), "Get")
}

func (t *testsuite) TestResolveUnknownAttempt() {
	t.attemptRepo.On("FindOne", mockCtx, int64(99)).Return(nil, domain.ErrNotFound)

	err := t.subject.ResolveTransfer(mockCtx, 99, &settlement.TransferResult{Ok: true})
	t.ErrorIs(err, domain.ErrStaleCallback)
}

func (t *testsuite) TestResolveDuplicateCallback() {
	attempt := awaitingAttempt()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.
		On("Resolve", mockCtx, int64(7), settlement.StateFinalized).
		Return(domain.ErrStaleCallback)

	err := t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true})
	t.ErrorIs(err, domain.ErrStaleCallback)
	t.saleRegistry.AssertNotCalled(t.T(), "FinalizePurchase")
	t.registries.AssertNotCalled(t.T(), "Get")
}

func (t *testsuite) TestResolveFinalizedRetriesAfterTransientFailure() {
	// the transaction aborts when the sale-side finalization fails, so the
	// attempt stays awaiting and the ledger's retried callback completes
	attempt := awaitingAttempt()
	id := attempt.SaleId()
	t.attemptRepo.On("FindOne", mockCtx, int64(7)).Return(attempt, nil)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateFinalized).Return(nil)
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(false, []sale.Bid(nil), domain.ErrInternalServerError).
		Once()
	t.saleRegistry.
		On("FinalizePurchase", mockCtx, id, int64(7), domain.NativeCurrency).
		Return(true, []sale.Bid(nil), nil).
		Once()
	t.registries.On("Get", mockCtx, domain.NativeCurrency).Return(t.registry, nil)
	t.registry.On("Transfer", mockCtx, domain.Address("royal"), big.NewInt(200)).Return(nil)
	t.registry.On("Transfer", mockCtx, domain.Address("alice"), big.NewInt(800)).Return(nil)

	err := t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true})
	t.ErrorIs(err, domain.ErrInternalServerError)
	t.registries.AssertNotCalled(t.T(), "Get")

	t.NoError(t.subject.ResolveTransfer(mockCtx, 7, &settlement.TransferResult{Ok: true}))
	t.registry.AssertExpectations(t.T())
	t.saleRegistry.AssertExpectations(t.T())
}

func (t *testsuite) TestDispatchFailureRollsBack() {
	id := sale.SaleId{Collection: "nft", TokenId: "1"}
	t.attemptRepo.On("NextAttemptId", mockCtx).Return(int64(7), nil)
	t.saleRegistry.On("Lock", mockCtx, id, int64(7)).Return(t.listedSale(), nil)
	t.attemptRepo.On("Create", mockCtx, mock.Anything).Return(nil)
	t.assetRegistry.
		On("TransferWithPayout", mockCtx, mock.Anything).
		Return(domain.ErrInternalServerError)
	t.attemptRepo.On("Resolve", mockCtx, int64(7), settlement.StateRolledBack).Return(nil)
	t.saleRegistry.On("Unlock", mockCtx, id, int64(7)).Return(nil)

	unused, err := t.subject.OnDepositReceived(mockCtx, domain.NativeCurrency, "bob", "1000",
		`{"collection":"nft","tokenId":"1"}`)
	t.Error(err)
	t.Equal("1000", unused)
	t.saleRegistry.AssertExpectations(t.T())
}
